package disk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDiskManager(t *testing.T) {
	dm := NewMemoryDiskManager(256)

	t.Run("allocate is sequential", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, PageID(i), dm.AllocatePage())
		}
	})

	t.Run("read unwritten page is zeroed", func(t *testing.T) {
		page := NewPage(256)
		page.PutInt(0, 7)
		require.NoError(t, dm.ReadPage(1, page))
		assert.Equal(t, int32(0), page.GetInt(0))
	})

	t.Run("write then read", func(t *testing.T) {
		page := NewPage(256)
		require.NoError(t, page.PutString(0, "lintang"))
		require.NoError(t, dm.WritePage(2, page))

		// later mutation of the caller's page must not leak into storage
		require.NoError(t, page.PutString(0, "changed"))

		reader := NewPage(256)
		require.NoError(t, dm.ReadPage(2, reader))
		assert.Equal(t, "lintang", reader.GetString(0))

		written, ok := dm.Written(2)
		require.True(t, ok)
		assert.Equal(t, reader.Contents(), written)
		assert.Equal(t, 1, dm.NumPages())
	})

	t.Run("deallocate drops content and recycles id", func(t *testing.T) {
		dm.DeallocatePage(2)
		_, ok := dm.Written(2)
		assert.False(t, ok)
		assert.Equal(t, int64(1), dm.NumDeallocations())
		assert.Equal(t, PageID(2), dm.AllocatePage())
	})

	t.Run("injected errors", func(t *testing.T) {
		boom := errors.New("boom")
		dm.SetReadError(boom)
		dm.SetWriteError(boom)
		assert.ErrorIs(t, dm.ReadPage(0, NewPage(256)), boom)
		assert.ErrorIs(t, dm.WritePage(0, NewPage(256)), boom)

		dm.SetReadError(nil)
		dm.SetWriteError(nil)
		assert.NoError(t, dm.ReadPage(0, NewPage(256)))
		assert.NoError(t, dm.WritePage(0, NewPage(256)))
	})

	t.Run("counters", func(t *testing.T) {
		assert.Equal(t, int64(3), dm.NumReads())
		assert.Equal(t, int64(2), dm.NumWrites())
	})
}

func TestNewMemoryDiskManagerPanicsOnInvalidSize(t *testing.T) {
	assert.PanicsWithValue(t, ErrInvalidPageSize, func() {
		NewMemoryDiskManager(0)
	})
}
