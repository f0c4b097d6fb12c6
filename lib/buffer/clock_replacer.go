package buffer

import "sync"

// ClockReplacer. second-chance: frame yang reference bit-nya masih nyala dilewati sekali sebelum dipilih jadi victim.
type ClockReplacer struct {
	mu       sync.Mutex
	capacity int
	inClock  []bool
	refBit   []bool
	hand     int
	size     int
}

func NewClockReplacer(capacity int) *ClockReplacer {
	if capacity <= 0 {
		panic(ErrInvalidPoolSize)
	}
	return &ClockReplacer{
		capacity: capacity,
		inClock:  make([]bool, capacity),
		refBit:   make([]bool, capacity),
	}
}

// Victim. putar clock hand paling banyak dua putaran.
func (c *ClockReplacer) Victim() (FrameID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.size == 0 {
		return -1, false
	}

	for {
		frame := c.hand
		c.hand = (c.hand + 1) % c.capacity

		if !c.inClock[frame] {
			continue
		}
		if c.refBit[frame] {
			c.refBit[frame] = false
			continue
		}

		c.inClock[frame] = false
		c.size--
		return FrameID(frame), true
	}
}

func (c *ClockReplacer) Pin(frameID FrameID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inRange(frameID) || !c.inClock[frameID] {
		return
	}
	c.inClock[frameID] = false
	c.refBit[frameID] = false
	c.size--
}

// Unpin. frame di luar kapasitas diabaikan.
func (c *ClockReplacer) Unpin(frameID FrameID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inRange(frameID) || c.inClock[frameID] {
		return
	}
	c.inClock[frameID] = true
	c.refBit[frameID] = true
	c.size++
}

func (c *ClockReplacer) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *ClockReplacer) inRange(frameID FrameID) bool {
	return frameID >= 0 && int(frameID) < c.capacity
}

func (c *ClockReplacer) Capacity() int {
	return c.capacity
}

// Frames. snapshot kandidat, urut frameID.
func (c *ClockReplacer) Frames() []FrameID {
	c.mu.Lock()
	defer c.mu.Unlock()

	frames := make([]FrameID, 0, c.size)
	for i, in := range c.inClock {
		if in {
			frames = append(frames, FrameID(i))
		}
	}
	return frames
}
