package delivery

import (
	"io"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxImageBytes bounds the size of an uploaded product image.
const maxImageBytes = 10 << 20

type ProductHandler struct {
	useCase  usecase.ProductUseCase
	defaults PagingDefaults
	log      *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, defaults PagingDefaults, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase:  uc,
		defaults: defaults,
		log:      logger,
	}
}

func (h *ProductHandler) RegisterRoutes(public, admin gin.IRouter) {
	public.GET("/products", h.ListProducts)
	public.GET("/products/:productId", h.GetProductByID)
	public.GET("/products/keyword/:keyword", h.SearchProductsByKeyword)
	public.GET("/categories/:categoryId/products", h.SearchProductsByCategory)

	admin.POST("/categories/:categoryId/product", h.AddProduct)
	admin.PUT("/products/:productId", h.UpdateProduct)
	admin.DELETE("/products/:productId", h.DeleteProduct)
	admin.PUT("/products/:productId/image", h.UpdateProductImage)
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var product domain.ProductDTO
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.AddProduct(c.Request.Context(), categoryID, &product)
	if err != nil {
		respondError(c, h.log, "Failed to create product", err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", created.ProductID, created.ProductName)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := idParam(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Failed to retrieve product", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := pageRequest(c, h.log, h.defaults, h.defaults.SortProductsBy)

	products, err := h.useCase.ListProducts(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.log, "Failed to retrieve products", err)
		return
	}

	h.log.Infof("Retrieved %d products", len(products.Content))
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) SearchProductsByCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	page := pageRequest(c, h.log, h.defaults, h.defaults.SortProductsBy)

	products, err := h.useCase.SearchProductsByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		respondError(c, h.log, "Failed to search products by category", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) SearchProductsByKeyword(c *gin.Context) {
	keyword := c.Param("keyword")
	page := pageRequest(c, h.log, h.defaults, h.defaults.SortProductsBy)

	products, err := h.useCase.SearchProductsByKeyword(c.Request.Context(), keyword, page)
	if err != nil {
		respondError(c, h.log, "Failed to search products by keyword", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product domain.ProductDTO
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.UpdateProduct(c.Request.Context(), id, &product)
	if err != nil {
		respondError(c, h.log, "Failed to update product", err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updated.ProductID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	deleted, err := h.useCase.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Failed to delete product", err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", deleted)
}

func (h *ProductHandler) UpdateProductImage(c *gin.Context) {
	id, ok := idParam(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for image upload: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	if file.Size > maxImageBytes {
		ErrorResponse(c, http.StatusRequestEntityTooLarge, "Image is too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.log.Errorf("Failed to open uploaded image for product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Could not read uploaded image")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
	if err != nil {
		h.log.Errorf("Failed to read uploaded image for product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Could not read uploaded image")
		return
	}

	updated, err := h.useCase.UpdateProductImage(c.Request.Context(), id, domain.ImageUpload{Filename: file.Filename, Data: data})
	if err != nil {
		respondError(c, h.log, "Failed to update product image", err)
		return
	}

	h.log.Infof("Product image updated successfully: ID %d, Image %s", id, updated.Image)
	SuccessResponse(c, http.StatusOK, "Product image updated successfully", updated)
}
