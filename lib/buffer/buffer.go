package buffer

import (
	"sync/atomic"

	"github.com/lintang-b-s/bufpool/lib/disk"
)

type DiskManager interface {
	ReadPage(pageID disk.PageID, page *disk.Page) error
	WritePage(pageID disk.PageID, page *disk.Page) error
	AllocatePage() disk.PageID
	DeallocatePage(pageID disk.PageID)
	PageSize() int
}

// LogManager. hook write-ahead log. disimpan buffer pool tapi belum dipanggil.
type LogManager interface {
	Flush(lsn int) error
}

// Buffer . satu frame di buffer pool. menyimpan page yang diambil dari disk ke memori selama status nya masih pinned (pins > 0).
// jika di unpin (pins = 0) frame boleh di-evict & isinya ditimpa page lain, jadi caller tidak boleh pegang Contents() setelah unpin.
type Buffer struct {
	diskManager DiskManager
	contents    *disk.Page  // page yang disimpan di buffer.
	pageID      disk.PageID // pageID dari page. INVALID_PAGE_ID kalau frame kosong.
	pins        atomic.Int32

	isDirty atomic.Bool // dirty flag buat nandain kalo page diupdate (isDirty = true -> harus diwrite ke disk sebelum frame dipakai page lain)
}

func (buf *Buffer) init(diskManager DiskManager) {
	buf.diskManager = diskManager
	buf.contents = disk.NewPage(diskManager.PageSize())
	buf.pageID = disk.INVALID_PAGE_ID
}

// Contents. return page contents dari buffer
func (buf *Buffer) Contents() *disk.Page {
	return buf.contents
}

// Data. byte array page contents.
func (buf *Buffer) Data() []byte {
	return buf.contents.Contents()
}

// PageID. return pageID page yang ada di frame ini.
func (buf *Buffer) PageID() disk.PageID {
	return buf.pageID
}

// PinCount. return pin count
func (buf *Buffer) PinCount() int {
	return int(buf.pins.Load())
}

// IsDirty. return dirty flag
func (buf *Buffer) IsDirty() bool {
	return buf.isDirty.Load()
}

func (buf *Buffer) isPinned() bool {
	return buf.pins.Load() > 0
}

func (buf *Buffer) isResident() bool {
	return buf.pageID.IsValid()
}

// assignToPage. read page (pageID) dari disk ke buf.contents. page lama harus sudah di-flush sama caller.
func (buf *Buffer) assignToPage(pageID disk.PageID) error {
	buf.pageID = pageID

	if err := buf.diskManager.ReadPage(pageID, buf.contents); err != nil {
		return err
	}
	buf.isDirty.Store(false)
	buf.pins.Store(1)
	return nil
}

// assignToNewPage. page baru: contents diisi nol & belum dirty.
func (buf *Buffer) assignToNewPage(pageID disk.PageID) {
	buf.pageID = pageID
	buf.contents.Zero()
	buf.isDirty.Store(false)
	buf.pins.Store(1)
}

// flush. write contents buffer ke disk.
func (buf *Buffer) flush() error {
	return buf.diskManager.WritePage(buf.pageID, buf.contents)
}

// incrementPin. increment pin count
func (buf *Buffer) incrementPin() {
	buf.pins.Add(1)
}

// decrementPin. decrement pin count, return pin count baru
func (buf *Buffer) decrementPin() int {
	return int(buf.pins.Add(-1))
}

// setDirty. set dirty flag
func (buf *Buffer) setDirty(isDirty bool) {
	buf.isDirty.Store(isDirty)
}

// reset. frame kembali kosong (buat free list).
func (buf *Buffer) reset() {
	buf.pageID = disk.INVALID_PAGE_ID
	buf.isDirty.Store(false)
	buf.pins.Store(0)
}
