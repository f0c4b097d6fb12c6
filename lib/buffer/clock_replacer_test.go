package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockReplacer(t *testing.T) {
	clock := NewClockReplacer(4)

	_, ok := clock.Victim()
	assert.False(t, ok)

	clock.Unpin(0)
	clock.Unpin(1)
	clock.Unpin(2)
	clock.Unpin(2)
	assert.Equal(t, 3, clock.Size())

	// semua reference bit nyala: putaran pertama clear, putaran kedua pilih frame 0
	got, ok := clock.Victim()
	assert.True(t, ok)
	assert.Equal(t, FrameID(0), got)

	clock.Pin(1)
	assert.Equal(t, 1, clock.Size())

	got, ok = clock.Victim()
	assert.True(t, ok)
	assert.Equal(t, FrameID(2), got)
	assert.Equal(t, 0, clock.Size())
}

func TestClockReplacerSecondChance(t *testing.T) {
	clock := NewClockReplacer(3)
	clock.Unpin(0)
	clock.Unpin(1)
	clock.Unpin(2)

	got, _ := clock.Victim() // clear 0,1,2 lalu ambil 0
	assert.Equal(t, FrameID(0), got)

	clock.Unpin(0) // dapat reference bit baru
	got, _ = clock.Victim()
	assert.Equal(t, FrameID(1), got)
	got, _ = clock.Victim()
	assert.Equal(t, FrameID(2), got)
	got, _ = clock.Victim()
	assert.Equal(t, FrameID(0), got)
}

func TestClockReplacerOutOfRange(t *testing.T) {
	clock := NewClockReplacer(2)
	clock.Unpin(-1)
	clock.Unpin(2)
	clock.Pin(5)
	assert.Equal(t, 0, clock.Size())
}

func TestNewClockReplacerPanicsOnZeroCapacity(t *testing.T) {
	assert.PanicsWithValue(t, ErrInvalidPoolSize, func() {
		NewClockReplacer(0)
	})
}
