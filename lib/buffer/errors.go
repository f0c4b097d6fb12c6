package buffer

import "errors"

var (
	ErrPoolExhausted    = errors.New("no free or evictable frame in buffer pool")
	ErrInvalidPageID    = errors.New("invalid page id")
	ErrInvalidPoolSize  = errors.New("invalid pool size")
	ErrNilDiskManager   = errors.New("disk manager is nil")
	ErrNilReplacer      = errors.New("replacer is nil")
	ErrReplacerTooSmall = errors.New("replacer capacity is smaller than pool size")
)
