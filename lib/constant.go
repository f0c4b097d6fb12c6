package lib

const (
	PAGE_SIZE                  = 4096
	MAX_PAGE_SIZE              = 16384
	MAX_BUFFER_POOL_SIZE_IN_MB = 300
	MAX_BUFFER_POOL_SIZE       = MAX_BUFFER_POOL_SIZE_IN_MB * 1024 * 1024 / MAX_PAGE_SIZE
	DEFAULT_POOL_SIZE          = 64

	DB_DIR         = "go_bufpool_db"
	PAGE_FILE_NAME = "go_bufpool.page"
)

// PAGE_SIZE_ARRAY. ukuran page yang didukung disk manager.
var PAGE_SIZE_ARRAY = []int{512, 1024, 2048, PAGE_SIZE, 8192, MAX_PAGE_SIZE}
