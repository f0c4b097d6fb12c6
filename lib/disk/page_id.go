package disk

import "strconv"

// PageID. identifier logical dari satu page di database file. page p disimpan di offset p * pageSize.
type PageID int64

// INVALID_PAGE_ID. sentinel buat "tidak ada page".
const INVALID_PAGE_ID PageID = -1

func (p PageID) IsValid() bool {
	return p >= 0
}

func (p PageID) String() string {
	if !p.IsValid() {
		return "INVALID_PAGE_ID"
	}
	return strconv.FormatInt(int64(p), 10)
}
