package grpc

import (
	"context"
	"io"
	"math"
	"net"
	"testing"

	"catalog_service/internal/delivery"
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

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

var testDefaults = delivery.PagingDefaults{
	PageSize:         50,
	SortCategoriesBy: "categoryId",
	SortProductsBy:   "productId",
	SortDir:          "asc",
}

func startCatalogServer(t *testing.T, products *mockProductUseCase, categories *mockCategoryUseCase) *CatalogClient {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	lis := bufconn.Listen(1 << 20)
	server := grpcgo.NewServer()
	RegisterCatalogServiceServer(server, NewCatalogHandler(products, categories, testDefaults, logger))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := Dial("passthrough:///bufnet", grpcgo.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewCatalogClient(conn, logger)
}

func TestCatalogService_GetCategory(t *testing.T) {
	categories := new(mockCategoryUseCase)
	categories.On("GetCategoryByID", mock.Anything, int64(1)).Return(&domain.CategoryDTO{CategoryID: 1, CategoryName: "Shoes"}, nil)
	categories.On("GetCategoryByID", mock.Anything, int64(5)).Return(nil, domain.NewNotFoundError("Category", "categoryId", int64(5)))
	client := startCatalogServer(t, new(mockProductUseCase), categories)
	ctx := context.Background()

	got, err := client.GetCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.CategoryDTO{CategoryID: 1, CategoryName: "Shoes"}, got)

	_, err = client.GetCategory(ctx, 5)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Category not found with categoryId: 5", status.Convert(err).Message())

	_, err = client.GetCategory(ctx, 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCatalogService_CreateCategory(t *testing.T) {
	categories := new(mockCategoryUseCase)
	categories.On("CreateCategory", mock.Anything, &domain.CategoryDTO{CategoryName: "Shoes"}).
		Return(nil, domain.NewAPIError("Category with the name Shoes already exists !!!"))
	client := startCatalogServer(t, new(mockProductUseCase), categories)

	_, err := client.CreateCategory(context.Background(), "Shoes")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateCategory(context.Background(), "  ")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	categories.AssertNumberOfCalls(t, "CreateCategory", 1)
}

func TestCatalogService_ListProductsUsesDefaults(t *testing.T) {
	products := new(mockProductUseCase)
	page := domain.PageRequest{Number: 0, Size: 50, SortBy: "productId", Direction: domain.SortAsc}
	products.On("ListProducts", mock.Anything, page).Return(&domain.PagedResponse[domain.ProductDTO]{
		Content:       []domain.ProductDTO{{ProductID: 1, ProductName: "Runner", SpecialPrice: 90}},
		PageSize:      50,
		TotalElements: 1,
		TotalPages:    1,
		LastPage:      true,
	}, nil)
	client := startCatalogServer(t, products, new(mockCategoryUseCase))

	got, err := client.ListProducts(context.Background(), &PageRequest{})

	require.NoError(t, err)
	require.Len(t, got.Content, 1)
	assert.Equal(t, 90.0, got.Content[0].SpecialPrice)
	assert.True(t, got.LastPage)
	products.AssertExpectations(t)
}

func TestCatalogService_SearchProductsByKeyword(t *testing.T) {
	products := new(mockProductUseCase)
	page := domain.PageRequest{Number: 1, Size: 10, SortBy: "price", Direction: domain.SortDesc}
	products.On("SearchProductsByKeyword", mock.Anything, "zzz", page).Return(nil, domain.NewAPIError("Product not found with keyword: zzz"))
	client := startCatalogServer(t, products, new(mockCategoryUseCase))

	_, err := client.SearchProductsByKeyword(context.Background(), &KeywordRequest{
		Keyword: "zzz",
		Page:    PageRequest{PageNumber: 1, PageSize: 10, SortBy: "price", SortOrder: "desc"},
	})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "Product not found with keyword: zzz", status.Convert(err).Message())
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	products := new(mockProductUseCase)
	products.On("DeleteProduct", mock.Anything, int64(3)).Return(&domain.ProductDTO{ProductID: 3}, nil)
	client := startCatalogServer(t, products, new(mockCategoryUseCase))

	require.NoError(t, client.DeleteProduct(context.Background(), 3))
	products.AssertExpectations(t)
}

func TestCatalogService_ListCategoriesClampsPageNumber(t *testing.T) {
	categories := new(mockCategoryUseCase)
	categories.On("ListCategories", mock.Anything, mock.MatchedBy(func(p domain.PageRequest) bool {
		return p.Size == 10 && p.Offset() > 0 && p.Offset() <= math.MaxInt32
	})).Return(nil, domain.NewAPIError("No category created till now"))
	client := startCatalogServer(t, new(mockProductUseCase), categories)

	_, err := client.ListCategories(context.Background(), &PageRequest{PageNumber: 1 << 60, PageSize: 10})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	categories.AssertExpectations(t)
}
