package disk

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryDiskManager. disk manager in-memory buat test & benchmark. page yang belum pernah ditulis dibaca sebagai nol.
type MemoryDiskManager struct {
	pageSize int
	pages    *xsync.MapOf[PageID, []byte]
	freelist *Freelist

	numReads   *xsync.Counter
	numWrites  *xsync.Counter
	numDeletes *xsync.Counter

	errMu    sync.Mutex
	readErr  error
	writeErr error
}

func NewMemoryDiskManager(pageSize int) *MemoryDiskManager {
	if pageSize <= 0 {
		panic(ErrInvalidPageSize)
	}
	return &MemoryDiskManager{
		pageSize:   pageSize,
		pages:      xsync.NewMapOf[PageID, []byte](),
		freelist:   NewFreelist(),
		numReads:   xsync.NewCounter(),
		numWrites:  xsync.NewCounter(),
		numDeletes: xsync.NewCounter(),
	}
}

func (m *MemoryDiskManager) ReadPage(pageID PageID, page *Page) error {
	if !pageID.IsValid() {
		return ErrInvalidPageID
	}
	if page.Size() != m.pageSize {
		return ErrPageSizeMismatch
	}
	if err := m.injectedReadErr(); err != nil {
		return err
	}

	if data, ok := m.pages.Load(pageID); ok {
		page.CopyFrom(data)
	} else {
		page.Zero()
	}
	m.numReads.Inc()
	return nil
}

func (m *MemoryDiskManager) WritePage(pageID PageID, page *Page) error {
	if !pageID.IsValid() {
		return ErrInvalidPageID
	}
	if page.Size() != m.pageSize {
		return ErrPageSizeMismatch
	}
	if err := m.injectedWriteErr(); err != nil {
		return err
	}

	data := make([]byte, m.pageSize)
	copy(data, page.Contents())
	m.pages.Store(pageID, data)
	m.numWrites.Inc()
	return nil
}

func (m *MemoryDiskManager) AllocatePage() PageID {
	return m.freelist.GetNextPage()
}

// DeallocatePage. hapus isi page & release page id ke freelist.
func (m *MemoryDiskManager) DeallocatePage(pageID PageID) {
	m.pages.Delete(pageID)
	m.freelist.ReleasePage(pageID)
	m.numDeletes.Inc()
}

func (m *MemoryDiskManager) PageSize() int {
	return m.pageSize
}

// Written. return copy isi page terakhir yang ditulis ke "disk".
func (m *MemoryDiskManager) Written(pageID PageID) ([]byte, bool) {
	data, ok := m.pages.Load(pageID)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

func (m *MemoryDiskManager) NumPages() int {
	return m.pages.Size()
}

func (m *MemoryDiskManager) NumReads() int64 {
	return m.numReads.Value()
}

func (m *MemoryDiskManager) NumWrites() int64 {
	return m.numWrites.Value()
}

func (m *MemoryDiskManager) NumDeallocations() int64 {
	return m.numDeletes.Value()
}

// SetReadError. semua ReadPage berikutnya return err (nil buat reset).
func (m *MemoryDiskManager) SetReadError(err error) {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	m.readErr = err
}

// SetWriteError. semua WritePage berikutnya return err (nil buat reset).
func (m *MemoryDiskManager) SetWriteError(err error) {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	m.writeErr = err
}

func (m *MemoryDiskManager) injectedReadErr() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	return m.readErr
}

func (m *MemoryDiskManager) injectedWriteErr() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	return m.writeErr
}
