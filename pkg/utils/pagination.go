package utils

// CalculateTotalPages returns the page count for a result set,
// rounding the last partial page up.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}

	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}

	return int(pages)
}

// CalculateOffset translates a 1-based page number into a row offset.
func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}

	return (page - 1) * perPage
}
