package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase  usecase.CategoryUseCase
	defaults PagingDefaults
	log      *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, defaults PagingDefaults, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase:  uc,
		defaults: defaults,
		log:      logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(public, admin gin.IRouter) {
	categories := public.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:categoryId", h.GetCategoryByID)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", h.CreateCategory)
		adminCategories.PUT("/:categoryId", h.UpdateCategory)
		adminCategories.DELETE("/:categoryId", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page := pageRequest(c, h.log, h.defaults, h.defaults.SortCategoriesBy)

	categories, err := h.useCase.ListCategories(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.log, "Failed to retrieve categories", err)
		return
	}

	h.log.Infof("Retrieved %d categories", len(categories.Content))
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Failed to retrieve category", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category domain.CategoryDTO
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		respondError(c, h.log, "Failed to create category", err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", created.CategoryID, created.CategoryName)
	SuccessResponse(c, http.StatusCreated, "Category created successfully", created)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var category domain.CategoryDTO
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), id, &category)
	if err != nil {
		respondError(c, h.log, "Failed to update category", err)
		return
	}

	h.log.Infof("Category updated successfully: ID %d", updated.CategoryID)
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	deleted, err := h.useCase.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Failed to delete category", err)
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", deleted)
}
