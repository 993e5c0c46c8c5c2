package usecase

import (
	"context"
	"io"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, page domain.PageRequest) ([]domain.Category, int64, error) {
	args := m.Called(ctx, page)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Get(1).(int64), args.Error(2)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) ListProducts(ctx context.Context, page domain.PageRequest) ([]domain.Product, int64, error) {
	args := m.Called(ctx, page)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) SearchProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) ([]domain.Product, int64, error) {
	args := m.Called(ctx, categoryID, page)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) SearchProductsByKeyword(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Product, int64, error) {
	args := m.Called(ctx, keyword, page)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Get(1).(int64), args.Error(2)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) GetCartByID(ctx context.Context, id int64) (*domain.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Error(1)
}

func (m *mockCartRepo) FindCartsByProductID(ctx context.Context, productID int64) ([]domain.Cart, error) {
	args := m.Called(ctx, productID)
	c, _ := args.Get(0).([]domain.Cart)
	return c, args.Error(1)
}

func (m *mockCartRepo) UpdateCartItemPrice(ctx context.Context, cartID, itemID int64, productPrice, discount, totalPrice float64) error {
	return m.Called(ctx, cartID, itemID, productPrice, discount, totalPrice).Error(0)
}

func (m *mockCartRepo) DeleteCartItem(ctx context.Context, cartID, itemID int64, totalPrice float64) error {
	return m.Called(ctx, cartID, itemID, totalPrice).Error(0)
}

type mockCartUseCase struct {
	mock.Mock
}

func (m *mockCartUseCase) UpdateProductInCarts(ctx context.Context, cartID, productID int64) (*domain.CartDTO, error) {
	args := m.Called(ctx, cartID, productID)
	c, _ := args.Get(0).(*domain.CartDTO)
	return c, args.Error(1)
}

func (m *mockCartUseCase) DeleteProductFromCart(ctx context.Context, cartID, productID int64) (string, error) {
	args := m.Called(ctx, cartID, productID)
	return args.String(0), args.Error(1)
}

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Store(ctx context.Context, dir, originalName string, data []byte) (string, error) {
	args := m.Called(ctx, dir, originalName, data)
	return args.String(0), args.Error(1)
}
