package buffer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lintang-b-s/bufpool/lib/disk"
)

// https://15445.courses.cs.cmu.edu/spring2023/slides/06-bufferpool.pdf

type BufferPoolManager struct {
	// frame. dialokasikan sekali waktu init, yang berubah cuma isinya.
	bufferPool []Buffer
	poolSize   int
	// mapping antara pageID dengan frameID/buffer index. {pageID: frameID}
	bufferTable map[disk.PageID]FrameID
	// list frame yang tidak hold any page data.
	freeList []FrameID
	// replacer buat evict frame yang unpinned dari buffer pool.
	replacer    Replacer
	diskManager DiskManager
	logManager  LogManager // belum dipakai.
	stats       *counters

	// pool-wide latch, dipegang selama satu operasi public.
	latch sync.Mutex
}

// NewBufferPoolManager. initialize buffer pool manager dengan LRU replacer. poolSize <= 0 panic ErrInvalidPoolSize.
func NewBufferPoolManager(poolSize int, diskManager DiskManager,
	logManager LogManager) *BufferPoolManager {
	return NewBufferPoolManagerWithReplacer(poolSize, diskManager, logManager, NewLRUReplacer(poolSize))
}

// NewBufferPoolManagerWithReplacer. sama dengan NewBufferPoolManager tapi policy eviction dipilih caller.
// replacer harus bisa track semua frame (Capacity() >= poolSize).
func NewBufferPoolManagerWithReplacer(poolSize int, diskManager DiskManager,
	logManager LogManager, replacer Replacer) *BufferPoolManager {
	if poolSize <= 0 {
		panic(ErrInvalidPoolSize)
	}
	if diskManager == nil {
		panic(ErrNilDiskManager)
	}
	if replacer == nil {
		panic(ErrNilReplacer)
	}
	if replacer.Capacity() < poolSize {
		panic(ErrReplacerTooSmall)
	}

	bufferPool := make([]Buffer, poolSize)
	fl := make([]FrameID, poolSize)
	for i := 0; i < poolSize; i++ {
		bufferPool[i].init(diskManager)
		fl[i] = FrameID(i) // awalnya semua frame ada di free list
	}

	return &BufferPoolManager{
		bufferPool:  bufferPool,
		poolSize:    poolSize,
		bufferTable: make(map[disk.PageID]FrameID, poolSize),
		freeList:    fl,
		replacer:    replacer,
		diskManager: diskManager,
		logManager:  logManager,
		stats:       newCounters(),
	}
}

func (bpm *BufferPoolManager) PoolSize() int {
	return bpm.poolSize
}

// FreeFrames. jumlah frame di free list.
func (bpm *BufferPoolManager) FreeFrames() int {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()
	return len(bpm.freeList)
}

/*
FetchPage. fetch page dengan pageID dari buffer pool. kalau page tidak ada di buffer pool, ambil frameID dari freelist
atau evict least recently used frame dari replacer, write back page lama kalau dirty, lalu read page dari disk.
return ErrPoolExhausted kalau semua frame sedang di pin.
*/
func (bpm *BufferPoolManager) FetchPage(pageID disk.PageID) (*Buffer, error) {
	if !pageID.IsValid() {
		return nil, ErrInvalidPageID
	}

	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	if frameID, ok := bpm.bufferTable[pageID]; ok {
		// kalau buffer sudah ada di buffer pool
		buffer := &bpm.bufferPool[frameID]

		buffer.incrementPin()     // incremeen pin +1, biar thread lain tahuu kalo buffer ini lagi dipake
		bpm.replacer.Pin(frameID) // remove from LRU, biar gak di evict dari buffer pool
		bpm.stats.hits.Inc()
		return buffer, nil
	}

	bpm.stats.misses.Inc()

	frameID, err := bpm.acquireFrame()
	if err != nil {
		return nil, err
	}

	replacedBuffer := &bpm.bufferPool[frameID]
	bpm.bufferTable[pageID] = frameID // put pageID ke pageTable

	if err := replacedBuffer.assignToPage(pageID); err != nil {
		// frame sudah tidak hold page lama, kembalikan ke free list
		delete(bpm.bufferTable, pageID)
		replacedBuffer.reset()
		bpm.freeList = append(bpm.freeList, frameID)
		return nil, fmt.Errorf("failed to read page %d: %w", pageID, err)
	}

	bpm.replacer.Pin(frameID)
	return replacedBuffer, nil
}

/*
NewPage. allocates a new page on disk dan put page baru ke buffer pool dengan pin count 1 & contents nol.
frameID baru di ambil dari freelist or dari evict frame di replacer.
*/
func (bpm *BufferPoolManager) NewPage() (disk.PageID, *Buffer, error) {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	frameID, err := bpm.acquireFrame()
	if err != nil {
		return disk.INVALID_PAGE_ID, nil, err
	}

	pageID := bpm.diskManager.AllocatePage() // create new pageID

	replacedBuffer := &bpm.bufferPool[frameID]
	replacedBuffer.assignToNewPage(pageID)

	bpm.replacer.Pin(frameID) // pin frameID biar tidak di evict dari buffer pool
	bpm.bufferTable[pageID] = frameID

	return pageID, replacedBuffer, nil
}

/*
UnpinPage. decrement pin count page. kalau pin count jadi 0, frame masuk replacer & boleh di evict.
return false kalau page tidak ada di buffer pool atau pin count sudah 0.

dirty flag di-set ke isDirty (bukan di-OR). UnpinPage(p, false) setelah UnpinPage(p, true) yang belum di flush
akan menghapus tanda dirty.
*/
func (bpm *BufferPoolManager) UnpinPage(pageID disk.PageID, isDirty bool) bool {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	frameID, ok := bpm.bufferTable[pageID]
	if !ok {
		// not in buffer pool
		return false
	}

	page := &bpm.bufferPool[frameID]
	page.setDirty(isDirty)

	if !page.isPinned() {
		// already unpinned
		return false
	}

	if page.decrementPin() == 0 {
		// kalau pinCount = 0, unpin di replacer
		bpm.replacer.Unpin(frameID)
	}

	return true
}

// FlushPage. write page ke disk walaupun tidak dirty, lalu clear dirty flag.
func (bpm *BufferPoolManager) FlushPage(pageID disk.PageID) bool {
	if !pageID.IsValid() {
		return false
	}

	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	frameID, ok := bpm.bufferTable[pageID]
	if !ok {
		return false
	}

	buffer := &bpm.bufferPool[frameID]
	if err := buffer.flush(); err != nil {
		log.Printf("error flush page %d: %v", pageID, err)
		return false
	}
	buffer.setDirty(false)
	bpm.stats.flushes.Inc()
	return true
}

// DeletePage. Removes a page from the buffer pool & deallocate pageID di disk. return false kalau page masih di pin.
func (bpm *BufferPoolManager) DeletePage(pageID disk.PageID) bool {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	frameID, ok := bpm.bufferTable[pageID]
	if !ok {
		// page tidak ada di buffer pool
		return true
	}

	deletedPage := &bpm.bufferPool[frameID]
	if deletedPage.isPinned() {
		// page masih di pin
		return false
	}

	bpm.diskManager.DeallocatePage(pageID)
	delete(bpm.bufferTable, pageID)

	bpm.replacer.Pin(frameID) // keluarkan dari kandidat eviction, frame pindah ke free list
	deletedPage.reset()

	bpm.freeList = append(bpm.freeList, frameID)
	return true
}

// FlushAllPages. flush semua frame yang hold page ke disk.
func (bpm *BufferPoolManager) FlushAllPages() error {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	var errs error
	for i := range bpm.bufferPool {
		buffer := &bpm.bufferPool[i]
		if !buffer.isResident() {
			continue
		}

		if err := buffer.flush(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to flush page %d: %w", buffer.pageID, err))
			continue
		}
		buffer.setDirty(false)
		bpm.stats.flushes.Inc()
	}
	return errs
}

// acquireFrame. ambil frame dari free list, kalau kosong evict victim dari replacer.
// page lama di frame victim di write back kalau dirty & dihapus dari bufferTable. harus dipanggil dengan latch.
func (bpm *BufferPoolManager) acquireFrame() (FrameID, error) {
	if len(bpm.freeList) != 0 {
		// ambil frame dari freeList, kalau freeList tidak kosong
		frameID := bpm.freeList[0]
		bpm.freeList = bpm.freeList[1:]
		return frameID, nil
	}

	frameID, ok := bpm.replacer.Victim()
	if !ok {
		// semua frame pinned
		return -1, ErrPoolExhausted
	}

	victim := &bpm.bufferPool[frameID]
	if !victim.isResident() {
		return frameID, nil
	}

	if victim.IsDirty() {
		// kalau page yang di evict dari buffer pool dirty (habis diupdate), flush page tsb
		if err := victim.flush(); err != nil {
			// page lama masih di frame, balikin jadi kandidat. masuk lagi sebagai most recently unpinned.
			bpm.replacer.Unpin(frameID)
			return -1, fmt.Errorf("failed to write back page %d: %w", victim.pageID, err)
		}
		victim.setDirty(false)
		bpm.stats.writeBacks.Inc()
	}

	delete(bpm.bufferTable, victim.pageID)
	bpm.stats.evictions.Inc()
	return frameID, nil
}
