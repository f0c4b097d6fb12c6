package disk

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var ErrPageOutOfBound = errors.New("put bytes out of bound")

// Page . menyimpan data satu page di dalam memori buffer (also disimpan di disk). (berukuran pageSize)
type Page struct {
	bb *bytes.Buffer
}

func NewPage(pageSize int) *Page {
	bb := bytes.NewBuffer(make([]byte, pageSize))
	return &Page{bb}
}

func NewPageFromByteSlice(b []byte) *Page {
	return &Page{bytes.NewBuffer(b)}
}

func (p *Page) GetInt(offset int32) int32 {
	return int32(binary.LittleEndian.Uint32(p.bb.Bytes()[offset:]))
}

// PutInt. set int ke byte array page di posisi = offset.
func (p *Page) PutInt(offset int32, val int32) {
	binary.LittleEndian.PutUint32(p.bb.Bytes()[offset:], uint32(val))
}

func (p *Page) PutUint64(offset int32, val uint64) {
	binary.LittleEndian.PutUint64(p.bb.Bytes()[offset:], val)
}

func (p *Page) GetUint64(offset int32) uint64 {
	return binary.LittleEndian.Uint64(p.bb.Bytes()[offset:])
}

// GetBytes. return byte array dari byte array page di posisi = offset. di awal ada panjang bytes nya sehingga buat read bytes tinggal baca buffer page[offset+4:offset+4+length]
func (p *Page) GetBytes(offset int32) []byte {
	length := p.GetInt(offset)
	b := make([]byte, length)
	copy(b, p.bb.Bytes()[offset+4:offset+4+length])
	return b
}

// PutBytes. set byte array ke byte array page di posisi = offset.
func (p *Page) PutBytes(offset int32, b []byte) (int, error) {
	if offset+4+int32(len(b)) > int32(len(p.bb.Bytes())) {
		return 0, ErrPageOutOfBound
	}
	p.PutInt(offset, int32(len(b)))
	copy(p.bb.Bytes()[offset+4:], b)
	return len(b) + 4, nil
}

// GetString. return string dari byte array page di posisi= offset.
func (p *Page) GetString(offset int32) string {
	return string(p.GetBytes(offset))
}

// PutString. set string ke byte array page di posisi = offset.
func (p *Page) PutString(offset int32, s string) error {
	_, err := p.PutBytes(offset, []byte(s))
	return err
}

// Contents. byte array page. panjangnya selalu pageSize.
func (p *Page) Contents() []byte {
	return p.bb.Bytes()
}

// Size. ukuran page dalam byte.
func (p *Page) Size() int {
	return len(p.bb.Bytes())
}

// Zero. isi ulang semua byte page dengan 0.
func (p *Page) Zero() {
	clear(p.bb.Bytes())
}

// CopyFrom. copy src ke page, sisanya diisi 0.
func (p *Page) CopyFrom(src []byte) {
	n := copy(p.bb.Bytes(), src)
	clear(p.bb.Bytes()[n:])
}
