package usecase

import (
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewPagedResponse(t *testing.T) {
	tests := []struct {
		name       string
		page       domain.PageRequest
		total      int64
		wantPages  int
		wantIsLast bool
	}{
		{name: "first of several", page: domain.PageRequest{Number: 0, Size: 10}, total: 25, wantPages: 3, wantIsLast: false},
		{name: "exact last page", page: domain.PageRequest{Number: 2, Size: 10}, total: 30, wantPages: 3, wantIsLast: true},
		{name: "partial last page", page: domain.PageRequest{Number: 2, Size: 10}, total: 25, wantPages: 3, wantIsLast: true},
		{name: "empty", page: domain.PageRequest{Number: 0, Size: 10}, total: 0, wantPages: 0, wantIsLast: true},
		{name: "past the end", page: domain.PageRequest{Number: 5, Size: 10}, total: 25, wantPages: 3, wantIsLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewPagedResponse([]int{}, tt.page, tt.total)
			assert.Equal(t, tt.wantPages, res.TotalPages)
			assert.Equal(t, tt.wantIsLast, res.LastPage)
			assert.Equal(t, tt.page.Number, res.PageNumber)
			assert.Equal(t, tt.page.Size, res.PageSize)
			assert.Equal(t, tt.total, res.TotalElements)
		})
	}

	t.Run("nil content becomes empty", func(t *testing.T) {
		res := NewPagedResponse[domain.ProductDTO](nil, domain.PageRequest{Size: 5}, 0)
		assert.NotNil(t, res.Content)
	})
}
