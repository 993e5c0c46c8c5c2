package usecase

import "catalog_service/internal/domain"

// NewPagedResponse wraps one page of content with the paging metadata of the request.
func NewPagedResponse[T any](content []T, page domain.PageRequest, total int64) *domain.PagedResponse[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return &domain.PagedResponse[T]{
		Content:       content,
		PageNumber:    page.Number,
		PageSize:      page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      page.Number+1 >= totalPages,
	}
}
