package buffer

import "github.com/puzpuzpuz/xsync/v3"

type counters struct {
	hits       *xsync.Counter
	misses     *xsync.Counter
	evictions  *xsync.Counter
	writeBacks *xsync.Counter
	flushes    *xsync.Counter
}

func newCounters() *counters {
	return &counters{
		hits:       xsync.NewCounter(),
		misses:     xsync.NewCounter(),
		evictions:  xsync.NewCounter(),
		writeBacks: xsync.NewCounter(),
		flushes:    xsync.NewCounter(),
	}
}

// Stats. snapshot statistik buffer pool.
type Stats struct {
	PoolSize           int
	FreeFrames         int
	ResidentPages      int
	PinnedPages        int
	DirtyPages         int
	EvictionCandidates int

	Hits       int64
	Misses     int64
	Evictions  int64 // frame resident yang dipakai ulang buat page lain
	WriteBacks int64 // dirty page yang ditulis ke disk waktu eviction
	Flushes    int64 // write dari FlushPage / FlushAllPages
}

// HitRate. hits / (hits + misses). 0 kalau belum ada fetch.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (bpm *BufferPoolManager) Stats() Stats {
	bpm.latch.Lock()
	defer bpm.latch.Unlock()

	stats := Stats{
		PoolSize:           bpm.poolSize,
		FreeFrames:         len(bpm.freeList),
		ResidentPages:      len(bpm.bufferTable),
		EvictionCandidates: bpm.replacer.Size(),
		Hits:               bpm.stats.hits.Value(),
		Misses:             bpm.stats.misses.Value(),
		Evictions:          bpm.stats.evictions.Value(),
		WriteBacks:         bpm.stats.writeBacks.Value(),
		Flushes:            bpm.stats.flushes.Value(),
	}

	for _, frameID := range bpm.bufferTable {
		buffer := &bpm.bufferPool[frameID]
		if buffer.isPinned() {
			stats.PinnedPages++
		}
		if buffer.IsDirty() {
			stats.DirtyPages++
		}
	}
	return stats
}
