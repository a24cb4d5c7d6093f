package models

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NormalizePage starts pages at 1 and replaces an out-of-range size with the default.
func NormalizePage(page, size, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > maxSize {
		size = defaultSize
	}

	return page, size
}
