package buffer

// FrameID. index frame di buffer pool.
type FrameID int

// Replacer. track frame yang boleh di-evict (resident & pin count = 0).
// semua method harus thread-safe & tidak boleh manggil balik ke BufferPoolManager.
type Replacer interface {
	// Victim. remove & return frame yang dipilih buat di-evict. false kalau tidak ada kandidat.
	Victim() (FrameID, bool)
	// Pin. frame sedang dipakai, keluarkan dari kandidat eviction.
	Pin(frameID FrameID)
	// Unpin. frame boleh di-evict.
	Unpin(frameID FrameID)
	// Size. jumlah kandidat eviction.
	Size() int
	// Capacity. frameID yang bisa di-track: 0 .. Capacity()-1.
	Capacity() int
}
