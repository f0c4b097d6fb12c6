package disk

import (
	"sync"
)

// Freelist. catat page id yang sudah di-deallocate supaya bisa dipakai lagi sama AllocatePage.
type Freelist struct {
	maxPage       PageID
	releasedPages []PageID
	latch         sync.Mutex
}

func NewFreelist() *Freelist {
	return &Freelist{
		maxPage:       INVALID_PAGE_ID,
		releasedPages: []PageID{},
	}
}

// NewFreelistFrom. lanjutkan numbering dari jumlah page yang sudah ada di file.
func NewFreelistFrom(numPages int) *Freelist {
	fr := NewFreelist()
	fr.maxPage = PageID(numPages) - 1
	return fr
}

func (fr *Freelist) MaxPage() PageID {
	fr.latch.Lock()
	defer fr.latch.Unlock()
	return fr.maxPage
}

func (fr *Freelist) ReleasedPages() []PageID {
	fr.latch.Lock()
	defer fr.latch.Unlock()
	return append([]PageID(nil), fr.releasedPages...)
}

// ReleasePage. page id dikembalikan ke freelist. release dua kali diabaikan.
func (fr *Freelist) ReleasePage(page PageID) {
	fr.latch.Lock()
	defer fr.latch.Unlock()

	if !page.IsValid() || page > fr.maxPage {
		return
	}
	for _, released := range fr.releasedPages {
		if released == page {
			return
		}
	}
	fr.releasedPages = append(fr.releasedPages, page)
}

// GetNextPage. ambil page id yang terakhir direlease, kalau kosong naikkan maxPage.
func (fr *Freelist) GetNextPage() PageID {
	fr.latch.Lock()
	defer fr.latch.Unlock()

	if len(fr.releasedPages) != 0 {
		pageID := fr.releasedPages[len(fr.releasedPages)-1]
		fr.releasedPages = fr.releasedPages[:len(fr.releasedPages)-1]
		return pageID
	}
	fr.maxPage += 1
	return fr.maxPage
}
