package lib

import "errors"

var ErrPageSizeTooLarge = errors.New("page size too large")

// CeilPageSize. bulatkan pageSize ke ukuran page terdekat yang didukung.
func CeilPageSize(pageSize int) (int, error) {
	for _, size := range PAGE_SIZE_ARRAY {
		if pageSize <= size {
			return size, nil
		}
	}
	return -1, ErrPageSizeTooLarge
}

// ClampPoolSize. batasi jumlah frame ke MAX_BUFFER_POOL_SIZE.
func ClampPoolSize(poolSize int) int {
	if poolSize <= 0 {
		return DEFAULT_POOL_SIZE
	}
	if poolSize > MAX_BUFFER_POOL_SIZE {
		return MAX_BUFFER_POOL_SIZE
	}
	return poolSize
}
