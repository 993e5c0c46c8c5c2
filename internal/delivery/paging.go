package delivery

import (
	"strconv"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PagingDefaults fill in query parameters the client left out.
type PagingDefaults struct {
	PageSize         int
	SortCategoriesBy string
	SortProductsBy   string
	SortDir          string
}

// pageRequest reads pageNumber, pageSize, sortBy and sortOrder. Malformed numbers
// fall back to the defaults.
func pageRequest(c *gin.Context, log *logrus.Logger, defaults PagingDefaults, defaultSortBy string) domain.PageRequest {
	number, err := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	if err != nil || number < 0 {
		log.Warnf("Invalid pageNumber parameter '%s', using 0", c.Query("pageNumber"))
		number = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaults.PageSize)))
	if err != nil || size <= 0 {
		log.Warnf("Invalid pageSize parameter '%s', using %d", c.Query("pageSize"), defaults.PageSize)
		size = defaults.PageSize
	}

	if clamped := domain.ClampPageNumber(number, size); clamped != number {
		log.Warnf("pageNumber %d is out of range, using %d", number, clamped)
		number = clamped
	}

	return domain.PageRequest{
		Number:    number,
		Size:      size,
		SortBy:    c.DefaultQuery("sortBy", defaultSortBy),
		Direction: domain.ParseSortDirection(c.DefaultQuery("sortOrder", defaults.SortDir)),
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
