package disk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

var (
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidPageID    = errors.New("invalid page id")
	ErrPageSizeMismatch = errors.New("page size does not match disk manager page size")
	ErrClosed           = errors.New("disk manager is closed")
)

// DiskManager. baca/tulis page ke satu database file. page p ada di offset p * pageSize.
type DiskManager struct {
	dbDir    string
	fileName string
	pageSize int
	file     *os.File
	freelist *Freelist
	isNew    bool

	numReads  *xsync.Counter
	numWrites *xsync.Counter
	latch     sync.RWMutex
}

func NewDiskManager(dbDir, fileName string, pageSize int) (*DiskManager, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir %s: %w", dbDir, err)
	}

	path := filepath.Join(dbDir, fileName)
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open db file %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat db file %s: %w", path, err)
	}
	numPages := int(fi.Size() / int64(pageSize))

	return &DiskManager{
		dbDir:     dbDir,
		fileName:  fileName,
		pageSize:  pageSize,
		file:      f,
		freelist:  NewFreelistFrom(numPages),
		isNew:     isNew,
		numReads:  xsync.NewCounter(),
		numWrites: xsync.NewCounter(),
	}, nil
}

// ReadPage. membaca satu page dari disk ke page. page yang belum pernah ditulis (di luar ukuran file) dibaca sebagai nol.
func (dm *DiskManager) ReadPage(pageID PageID, page *Page) error {
	if !pageID.IsValid() {
		return ErrInvalidPageID
	}
	if page.Size() != dm.pageSize {
		return ErrPageSizeMismatch
	}

	dm.latch.RLock()
	defer dm.latch.RUnlock()
	if dm.file == nil {
		return ErrClosed
	}

	buf := page.Contents()
	n, err := dm.file.ReadAt(buf, int64(pageID)*int64(dm.pageSize))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read page %d: %w", pageID, err)
	}
	clear(buf[n:])

	dm.numReads.Inc()
	return nil
}

// WritePage. menulis satu page ke disk pada offset pageID * pageSize.
func (dm *DiskManager) WritePage(pageID PageID, page *Page) error {
	if !pageID.IsValid() {
		return ErrInvalidPageID
	}
	if page.Size() != dm.pageSize {
		return ErrPageSizeMismatch
	}

	dm.latch.RLock()
	defer dm.latch.RUnlock()
	if dm.file == nil {
		return ErrClosed
	}

	if _, err := dm.file.WriteAt(page.Contents(), int64(pageID)*int64(dm.pageSize)); err != nil {
		return fmt.Errorf("write page %d: %w", pageID, err)
	}

	dm.numWrites.Inc()
	return nil
}

// AllocatePage. return page id baru. page id yang sudah di-deallocate dipakai lagi duluan.
func (dm *DiskManager) AllocatePage() PageID {
	return dm.freelist.GetNextPage()
}

// DeallocatePage. release page id ke freelist. isi page di file tidak disentuh.
func (dm *DiskManager) DeallocatePage(pageID PageID) {
	dm.freelist.ReleasePage(pageID)
}

func (dm *DiskManager) PageSize() int {
	return dm.pageSize
}

// NumPages. jumlah page di database file.
func (dm *DiskManager) NumPages() (int, error) {
	dm.latch.RLock()
	defer dm.latch.RUnlock()
	if dm.file == nil {
		return 0, ErrClosed
	}

	fi, err := dm.file.Stat()
	if err != nil {
		return 0, err
	}
	return int(fi.Size() / int64(dm.pageSize)), nil
}

func (dm *DiskManager) NumReads() int64 {
	return dm.numReads.Value()
}

func (dm *DiskManager) NumWrites() int64 {
	return dm.numWrites.Value()
}

func (dm *DiskManager) IsNew() bool {
	return dm.isNew
}

func (dm *DiskManager) GetDBDir() string {
	return dm.dbDir
}

// Close. sync & close database file. aman dipanggil berkali-kali.
func (dm *DiskManager) Close() error {
	dm.latch.Lock()
	defer dm.latch.Unlock()

	if dm.file == nil {
		return nil
	}

	var err error
	if e := dm.file.Sync(); e != nil {
		err = errors.Join(err, fmt.Errorf("sync file: %w", e))
	}
	if e := dm.file.Close(); e != nil {
		err = errors.Join(err, fmt.Errorf("close file: %w", e))
	}
	dm.file = nil
	return err
}
