package repository

import (
	"fmt"
	"strings"

	"catalog_service/internal/domain"
)

var categorySortColumns = map[string]string{
	"categoryid":   "id",
	"id":           "id",
	"categoryname": "name",
	"name":         "name",
}

var productSortColumns = map[string]string{
	"productid":    "id",
	"id":           "id",
	"productname":  "name",
	"name":         "name",
	"description":  "description",
	"quantity":     "quantity",
	"price":        "price",
	"discount":     "discount",
	"specialprice": "special_price",
	"image":        "image",
}

// orderBy maps a client facing sort field to a column. Unknown fields never reach SQL.
func orderBy(columns map[string]string, page domain.PageRequest) (string, error) {
	column, ok := columns[strings.ToLower(strings.ReplaceAll(page.SortBy, "_", ""))]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortField, page.SortBy)
	}
	return column + " " + page.Direction.String(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching keyword anywhere in the value.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}
