package domain

import (
	"math"
	"strings"
)

type SortDirection int

const (
	SortDesc SortDirection = iota
	SortAsc
)

// ParseSortDirection treats "asc" in any case as ascending and everything else as descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, "asc") {
		return SortAsc
	}
	return SortDesc
}

func (d SortDirection) String() string {
	if d == SortAsc {
		return "ASC"
	}
	return "DESC"
}

// PageRequest selects a zero based page of Size records ordered by SortBy.
type PageRequest struct {
	Number    int
	Size      int
	SortBy    string
	Direction SortDirection
}

// maxOffset keeps Number*Size inside int on every platform.
const maxOffset = math.MaxInt32

// ClampPageNumber lowers number so that number*size does not exceed maxOffset.
// Clamped pages lie past the end of any real listing.
func ClampPageNumber(number, size int) int {
	if size > 0 && number > maxOffset/size {
		return maxOffset / size
	}
	return number
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

type PagedResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	LastPage      bool  `json:"lastPage"`
}
