package query

// DefaultPageSize is the number of rows shown per page in list views
const DefaultPageSize = 7

// Paginate returns the 1-indexed page of items: items[(page-1)*size : page*size].
// Pages outside the range yield an empty slice; callers own clamping.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is the number of pages needed for n items, at least 1
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage bounds page to [1, TotalPages(n, size)]
func ClampPage(page, n, size int) int {
	last := TotalPages(n, size)
	switch {
	case page < 1:
		return 1
	case page > last:
		return last
	default:
		return page
	}
}
