package main

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lintang-b-s/bufpool/lib/buffer"
	"github.com/lintang-b-s/bufpool/lib/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -v ./... --race
// go test -bench=. -benchmem

func TestWorkloadOnFileDisk(t *testing.T) {
	dm, err := disk.NewDiskManager(t.TempDir(), "workload.db", 1024)
	require.NoError(t, err)
	defer dm.Close()

	bpm := buffer.NewBufferPoolManager(16, dm, nil)
	faker := gofakeit.New(0)

	pageIDs, names, err := seedPages(bpm, faker, 100)
	require.NoError(t, err)
	assert.Len(t, pageIDs, 100)

	failed, _ := runWorkload(bpm, faker, pageIDs, names, 8, 5000)
	assert.Equal(t, 0, failed)

	// 100 page di pool 16 frame, jadi sebagian besar di fetch ulang dari disk
	for _, pageID := range pageIDs {
		bf, err := bpm.FetchPage(pageID)
		require.NoError(t, err)
		assert.Equal(t, names[pageID], bf.Contents().GetString(0), "page %d", pageID)
		assert.True(t, bpm.UnpinPage(pageID, false))
	}
	assert.Greater(t, bpm.Stats().Misses, int64(0))

	require.NoError(t, bpm.FlushAllPages())
	stats := bpm.Stats()
	assert.Equal(t, 0, stats.PinnedPages)
	assert.Equal(t, 0, stats.DirtyPages)

	// semua page bisa dibaca lagi langsung dari disk
	page := disk.NewPage(1024)
	for _, pageID := range pageIDs {
		require.NoError(t, dm.ReadPage(pageID, page))
		assert.Equal(t, names[pageID], page.GetString(0))
	}
}

func benchmarkFetch(b *testing.B, poolSize int, replacer buffer.Replacer) {
	const numPages = 1024
	dm := disk.NewMemoryDiskManager(4096)
	bpm := buffer.NewBufferPoolManagerWithReplacer(poolSize, dm, nil, replacer)

	faker := gofakeit.New(0)
	pageIDs, _, err := seedPages(bpm, faker, numPages)
	if err != nil {
		b.Fatal(err)
	}

	accesses := make([]disk.PageID, 4096)
	for i := range accesses {
		// 80% akses ke 20% page
		if faker.Float64() < 0.8 {
			accesses[i] = pageIDs[faker.Number(0, numPages/5-1)]
		} else {
			accesses[i] = pageIDs[faker.Number(0, numPages-1)]
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pageID := accesses[i%len(accesses)]
		if _, err := bpm.FetchPage(pageID); err != nil {
			b.Fatal(err)
		}
		bpm.UnpinPage(pageID, i%10 == 0)
	}
	b.StopTimer()

	b.ReportMetric(bpm.Stats().HitRate(), "hitrate")
}

func BenchmarkFetchLRU(b *testing.B) {
	benchmarkFetch(b, 256, buffer.NewLRUReplacer(256))
}

func BenchmarkFetchClock(b *testing.B) {
	benchmarkFetch(b, 256, buffer.NewClockReplacer(256))
}

func BenchmarkFetchParallel(b *testing.B) {
	const numPages = 512
	dm := disk.NewMemoryDiskManager(4096)
	bpm := buffer.NewBufferPoolManager(128, dm, nil)

	pageIDs, _, err := seedPages(bpm, gofakeit.New(0), numPages)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		faker := gofakeit.New(0)
		for pb.Next() {
			pageID := pageIDs[faker.Number(0, numPages-1)]
			_, err := bpm.FetchPage(pageID)
			if errors.Is(err, buffer.ErrPoolExhausted) {
				continue
			}
			if err != nil {
				b.Error(err)
				return
			}
			bpm.UnpinPage(pageID, false)
		}
	})
}
