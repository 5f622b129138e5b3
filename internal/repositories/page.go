package repositories

// Page is a 1-based page request against an ordered result set.
type Page struct {
	Number int
	Size   int
}

const DefaultPageSize = 20

// Normalize clamps nonsense input to the first page and the default size.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset is the half-open range start: records [Offset, Offset+Size).
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages is ceil(count / size); zero rows means zero pages.
func TotalPages(count int64, size int) int {
	if size < 1 || count < 1 {
		return 0
	}
	return int((count + int64(size) - 1) / int64(size))
}
