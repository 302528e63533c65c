package utils

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageWindow clamps a 1-based page request and returns the SQL limit and offset.
func PageWindow(page, perPage int) (limit, offset int) {
	switch {
	case perPage < 1:
		limit = DefaultPerPage
	case perPage > MaxPerPage:
		limit = MaxPerPage
	default:
		limit = perPage
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
