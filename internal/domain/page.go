package domain

import "math"

// MaxPageSize is the largest page any listing returns.
const MaxPageSize = 1000

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Validate rejects a page whose row offset does not fit in an int.
func (p PageRequest) Validate() error {
	if p.PageSize > 0 && p.Page-1 > math.MaxInt/p.PageSize {
		return NewValidationError("page", "is too large")
	}
	return nil
}

// TotalPages returns ceil(total / pageSize). A non-positive page size yields 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
