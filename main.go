package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lintang-b-s/bufpool/lib"
	"github.com/lintang-b-s/bufpool/lib/buffer"
	"github.com/lintang-b-s/bufpool/lib/disk"
	"github.com/lintang-b-s/bufpool/lib/util"
)

var (
	poolSize     = flag.Int("pool", lib.DEFAULT_POOL_SIZE, "jumlah frame di buffer pool")
	numWorkers   = flag.Int("workers", 8, "jumlah goroutine yang fetch page")
	numPages     = flag.Int("pages", 1000, "jumlah page yang dibuat di database file")
	numOps       = flag.Int("ops", 100000, "jumlah fetch/unpin")
	dbDir        = flag.String("dir", lib.DB_DIR, "directory database file")
	replacerName = flag.String("replacer", "lru", "eviction policy: lru | clock")
	pageSize     = flag.Int("pagesize", lib.PAGE_SIZE, "ukuran page dalam byte")
)

func main() {
	flag.Parse()

	size, err := lib.CeilPageSize(*pageSize)
	if err != nil {
		log.Fatalf("invalid page size %d: %v", *pageSize, err)
	}
	frames := lib.ClampPoolSize(*poolSize)
	if *numPages <= 0 || *numWorkers <= 0 || *numOps < 0 {
		log.Fatalf("pages & workers must be positive, ops must not be negative")
	}

	dm, err := disk.NewDiskManager(*dbDir, lib.PAGE_FILE_NAME, size)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := dm.Close(); err != nil {
			log.Printf("error closing disk manager: %v", err)
		}
	}()

	var replacer buffer.Replacer
	switch *replacerName {
	case "lru":
		replacer = buffer.NewLRUReplacer(frames)
	case "clock":
		replacer = buffer.NewClockReplacer(frames)
	default:
		log.Fatalf("unknown replacer %q", *replacerName)
	}
	bpm := buffer.NewBufferPoolManagerWithReplacer(frames, dm, nil, replacer)

	log.Printf("pool=%d frames, page size=%d, replacer=%s, db=%s", frames, size, *replacerName, dm.GetDBDir())

	faker := gofakeit.New(0)
	startTimer := time.Now()

	pageIDs, names, err := seedPages(bpm, faker, *numPages)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%v seconds for creating %d pages", time.Since(startTimer).Seconds(), len(pageIDs))

	startTimer = time.Now()
	failed, exhausted := runWorkload(bpm, faker, pageIDs, names, *numWorkers, *numOps)
	log.Printf("%v seconds for %d fetches, %d failed, %d pool exhausted", time.Since(startTimer).Seconds(),
		*numOps, failed, exhausted)

	if err := bpm.FlushAllPages(); err != nil {
		log.Printf("error flushing pages: %v", err)
	}

	stats := bpm.Stats()
	fmt.Printf("hits=%d misses=%d hit rate=%.3f evictions=%d write backs=%d flushes=%d\n",
		stats.Hits, stats.Misses, stats.HitRate(), stats.Evictions, stats.WriteBacks, stats.Flushes)
	fmt.Printf("disk reads=%d writes=%d\n", dm.NumReads(), dm.NumWrites())
}

// seedPages. buat n page baru, isi tiap page dengan nama random, lalu flush semua ke disk.
func seedPages(bpm *buffer.BufferPoolManager, faker *gofakeit.Faker, n int) ([]disk.PageID, map[disk.PageID]string, error) {
	pageIDs := make([]disk.PageID, 0, n)
	names := make(map[disk.PageID]string, n)
	for i := 0; i < n; i++ {
		pageID, page, err := bpm.NewPage()
		if err != nil {
			return nil, nil, fmt.Errorf("new page %d: %w", i, err)
		}

		name := faker.Name()
		if err := page.Contents().PutString(0, name); err != nil {
			bpm.UnpinPage(pageID, false)
			return nil, nil, err
		}
		bpm.UnpinPage(pageID, true)

		pageIDs = append(pageIDs, pageID)
		names[pageID] = name
	}

	// reader unpin dengan isDirty=false & dirty flag di-overwrite, jadi page harus sudah clean sebelum workload.
	if err := bpm.FlushAllPages(); err != nil {
		return nil, nil, fmt.Errorf("flush seeded pages: %w", err)
	}
	return pageIDs, names, nil
}

// runWorkload. fetch page random secara concurrent & cek isinya masih sama dengan yang ditulis seedPages.
func runWorkload(bpm *buffer.BufferPoolManager, faker *gofakeit.Faker, pageIDs []disk.PageID,
	names map[disk.PageID]string, workers, ops int) (failed, exhausted int) {
	wp := util.NewWorkerPool[disk.PageID, error](workers, ops)
	for i := 0; i < ops; i++ {
		wp.AddJob(pageIDs[faker.Number(0, len(pageIDs)-1)])
	}
	wp.Close()

	wp.Start(func(pageID disk.PageID) error {
		page, err := bpm.FetchPage(pageID)
		if err != nil {
			return err
		}
		defer bpm.UnpinPage(pageID, false)

		if got := page.Contents().GetString(0); got != names[pageID] {
			return fmt.Errorf("page %d: got %q, want %q", pageID, got, names[pageID])
		}
		return nil
	})
	wp.Wait()

	for err := range wp.CollectResults() {
		switch {
		case err == nil:
		case errors.Is(err, buffer.ErrPoolExhausted):
			exhausted++
		default:
			failed++
			log.Printf("error: %v", err)
		}
	}
	return failed, exhausted
}
