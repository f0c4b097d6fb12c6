package disk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	page := NewPage(64)
	assert.Equal(t, 64, page.Size())

	t.Run("int and uint64", func(t *testing.T) {
		page.PutInt(0, -5)
		page.PutUint64(4, 1<<40)
		assert.Equal(t, int32(-5), page.GetInt(0))
		assert.Equal(t, uint64(1<<40), page.GetUint64(4))
	})

	t.Run("bytes out of bound", func(t *testing.T) {
		_, err := page.PutBytes(60, []byte("too long"))
		assert.ErrorIs(t, err, ErrPageOutOfBound)
	})

	t.Run("string", func(t *testing.T) {
		assert.NoError(t, page.PutString(20, "bufpool"))
		assert.Equal(t, "bufpool", page.GetString(20))
	})

	t.Run("copy from shorter slice zero fills", func(t *testing.T) {
		page.CopyFrom([]byte{1, 2, 3})
		want := make([]byte, 64)
		copy(want, []byte{1, 2, 3})
		assert.Equal(t, want, page.Contents())
	})

	t.Run("zero", func(t *testing.T) {
		page.Zero()
		assert.Equal(t, make([]byte, 64), page.Contents())
	})
}

func TestPageIDString(t *testing.T) {
	assert.Equal(t, "INVALID_PAGE_ID", INVALID_PAGE_ID.String())
	assert.Equal(t, "12", PageID(12).String())
	assert.False(t, INVALID_PAGE_ID.IsValid())
}

func TestFreelist(t *testing.T) {
	fr := NewFreelist()
	assert.Equal(t, INVALID_PAGE_ID, fr.MaxPage())

	assert.Equal(t, PageID(0), fr.GetNextPage())
	assert.Equal(t, PageID(1), fr.GetNextPage())
	assert.Equal(t, PageID(2), fr.GetNextPage())

	fr.ReleasePage(1)
	fr.ReleasePage(1)
	fr.ReleasePage(9)
	fr.ReleasePage(INVALID_PAGE_ID)
	assert.Equal(t, []PageID{1}, fr.ReleasedPages())

	assert.Equal(t, PageID(1), fr.GetNextPage())
	assert.Equal(t, PageID(3), fr.GetNextPage())
	assert.Equal(t, PageID(3), fr.MaxPage())

	assert.Equal(t, PageID(4), NewFreelistFrom(4).GetNextPage())
}
