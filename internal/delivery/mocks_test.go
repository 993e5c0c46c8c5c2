package delivery

import (
	"context"
	"io"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testDefaults = PagingDefaults{
	PageSize:         50,
	SortCategoriesBy: "categoryId",
	SortProductsBy:   "productId",
	SortDir:          "asc",
}

type mockCategoryUseCase struct {
	mock.Mock
}

func (m *mockCategoryUseCase) ListCategories(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.CategoryDTO], error) {
	args := m.Called(ctx, page)
	res, _ := args.Get(0).(*domain.PagedResponse[domain.CategoryDTO])
	return res, args.Error(1)
}

func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id int64) (*domain.CategoryDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.CategoryDTO)
	return res, args.Error(1)
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, category *domain.CategoryDTO) (*domain.CategoryDTO, error) {
	args := m.Called(ctx, category)
	res, _ := args.Get(0).(*domain.CategoryDTO)
	return res, args.Error(1)
}

func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, id int64, category *domain.CategoryDTO) (*domain.CategoryDTO, error) {
	args := m.Called(ctx, id, category)
	res, _ := args.Get(0).(*domain.CategoryDTO)
	return res, args.Error(1)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int64) (*domain.CategoryDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.CategoryDTO)
	return res, args.Error(1)
}

type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) AddProduct(ctx context.Context, categoryID int64, product *domain.ProductDTO) (*domain.ProductDTO, error) {
	args := m.Called(ctx, categoryID, product)
	res, _ := args.Get(0).(*domain.ProductDTO)
	return res, args.Error(1)
}

func (m *mockProductUseCase) GetProductByID(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.ProductDTO)
	return res, args.Error(1)
}

func (m *mockProductUseCase) ListProducts(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	args := m.Called(ctx, page)
	res, _ := args.Get(0).(*domain.PagedResponse[domain.ProductDTO])
	return res, args.Error(1)
}

func (m *mockProductUseCase) SearchProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	args := m.Called(ctx, categoryID, page)
	res, _ := args.Get(0).(*domain.PagedResponse[domain.ProductDTO])
	return res, args.Error(1)
}

func (m *mockProductUseCase) SearchProductsByKeyword(ctx context.Context, keyword string, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	args := m.Called(ctx, keyword, page)
	res, _ := args.Get(0).(*domain.PagedResponse[domain.ProductDTO])
	return res, args.Error(1)
}

func (m *mockProductUseCase) UpdateProduct(ctx context.Context, id int64, product *domain.ProductDTO) (*domain.ProductDTO, error) {
	args := m.Called(ctx, id, product)
	res, _ := args.Get(0).(*domain.ProductDTO)
	return res, args.Error(1)
}

func (m *mockProductUseCase) DeleteProduct(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.ProductDTO)
	return res, args.Error(1)
}

func (m *mockProductUseCase) UpdateProductImage(ctx context.Context, id int64, image domain.ImageUpload) (*domain.ProductDTO, error) {
	args := m.Called(ctx, id, image)
	res, _ := args.Get(0).(*domain.ProductDTO)
	return res, args.Error(1)
}
