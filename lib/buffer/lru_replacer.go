package buffer

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRUReplacer. kandidat eviction diurutkan dari yang paling lama di-unpin.
type LRUReplacer struct {
	mu       sync.Mutex
	capacity int
	lst      *simplelru.LRU[FrameID, struct{}]
}

func NewLRUReplacer(capacity int) *LRUReplacer {
	lst, err := simplelru.NewLRU[FrameID, struct{}](capacity, nil)
	if err != nil {
		panic(ErrInvalidPoolSize)
	}
	return &LRUReplacer{
		capacity: capacity,
		lst:      lst,
	}
}

// Unpin. marks a frame as unpinned, making it eligible for eviction dari LRU
func (lru *LRUReplacer) Unpin(frameID FrameID) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if lru.lst.Contains(frameID) {
		// already in the list, recency tidak di-refresh
		return
	}

	if lru.lst.Len() >= lru.capacity {
		// lru full -> dont do anything. simplelru bakal evict sendiri kalau dipaksa Add.
		return
	}

	lru.lst.Add(frameID, struct{}{}) // most recently unpinned
}

// Size. return jumlah frame dalam LRU
func (lru *LRUReplacer) Size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	return lru.lst.Len()
}

// Pin marks a frame as pinned. buat frame jadi ineligible for eviction dari LRU
func (lru *LRUReplacer) Pin(frameID FrameID) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	lru.lst.Remove(frameID)
}

// Victim. return frameID yang least recently unpinned & remove dari LRU.
func (lru *LRUReplacer) Victim() (FrameID, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	frameID, _, ok := lru.lst.RemoveOldest()
	if !ok {
		return -1, false
	}
	return frameID, true
}

func (lru *LRUReplacer) Capacity() int {
	return lru.capacity
}

// Frames. snapshot kandidat dari least ke most recently unpinned.
func (lru *LRUReplacer) Frames() []FrameID {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	return lru.lst.Keys()
}
