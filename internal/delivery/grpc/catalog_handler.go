package grpc

import (
	"context"
	"errors"
	"strings"

	"catalog_service/internal/delivery"
	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type CatalogHandler struct {
	productUseCase  usecase.ProductUseCase
	categoryUseCase usecase.CategoryUseCase
	defaults        delivery.PagingDefaults
	log             *logrus.Logger
}

var _ CatalogServiceServer = (*CatalogHandler)(nil)

func NewCatalogHandler(puc usecase.ProductUseCase, cuc usecase.CategoryUseCase, defaults delivery.PagingDefaults, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		productUseCase:  puc,
		categoryUseCase: cuc,
		defaults:        defaults,
		log:             logger,
	}
}

func (h *CatalogHandler) pageRequest(req *PageRequest, defaultSortBy string) domain.PageRequest {
	page := domain.PageRequest{
		Number:    req.PageNumber,
		Size:      req.PageSize,
		SortBy:    req.SortBy,
		Direction: domain.ParseSortDirection(req.SortOrder),
	}
	if page.Number < 0 {
		page.Number = 0
	}
	if page.Size <= 0 {
		page.Size = h.defaults.PageSize
	}
	page.Number = domain.ClampPageNumber(page.Number, page.Size)
	if page.SortBy == "" {
		page.SortBy = defaultSortBy
	}
	if req.SortOrder == "" {
		page.Direction = domain.ParseSortDirection(h.defaults.SortDir)
	}
	return page
}

func (h *CatalogHandler) GetCategory(ctx context.Context, req *IDRequest) (*domain.CategoryDTO, error) {
	h.log.Infof("gRPC Handler: Received GetCategory request: ID=%d", req.ID)
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid category ID")
	}

	category, err := h.categoryUseCase.GetCategoryByID(ctx, req.ID)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return category, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, req *PageRequest) (*CategoryPage, error) {
	page := h.pageRequest(req, h.defaults.SortCategoriesBy)
	h.log.Infof("gRPC Handler: Received ListCategories request: Page=%d, Size=%d", page.Number, page.Size)

	categories, err := h.categoryUseCase.ListCategories(ctx, page)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return categories, nil
}

func (h *CatalogHandler) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*domain.CategoryDTO, error) {
	h.log.Infof("gRPC Handler: Received CreateCategory request: Name=%s", req.Name)
	if strings.TrimSpace(req.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "Category name must not be empty")
	}

	created, err := h.categoryUseCase.CreateCategory(ctx, &domain.CategoryDTO{CategoryName: req.Name})
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category created successfully: ID=%d", created.CategoryID)
	return created, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *IDRequest) (*domain.ProductDTO, error) {
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%d", req.ID)
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.GetProductByID(ctx, req.ID)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return product, nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *PageRequest) (*ProductPage, error) {
	page := h.pageRequest(req, h.defaults.SortProductsBy)
	h.log.Infof("gRPC Handler: Received ListProducts request: Page=%d, Size=%d", page.Number, page.Size)

	products, err := h.productUseCase.ListProducts(ctx, page)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return products, nil
}

func (h *CatalogHandler) SearchProductsByKeyword(ctx context.Context, req *KeywordRequest) (*ProductPage, error) {
	h.log.Infof("gRPC Handler: Received SearchProductsByKeyword request: Keyword=%s", req.Keyword)
	page := h.pageRequest(&req.Page, h.defaults.SortProductsBy)

	products, err := h.productUseCase.SearchProductsByKeyword(ctx, req.Keyword, page)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return products, nil
}

func (h *CatalogHandler) DeleteProduct(ctx context.Context, req *IDRequest) (*emptypb.Empty, error) {
	h.log.Infof("gRPC Handler: Received DeleteProduct request: ID=%d", req.ID)
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	if _, err := h.productUseCase.DeleteProduct(ctx, req.ID); err != nil {
		h.log.Errorf("gRPC Handler: DeleteProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Product deleted successfully: ID=%d", req.ID)
	return &emptypb.Empty{}, nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case domain.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case domain.IsAPIError(err), errors.Is(err, domain.ErrInvalidSortField):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}
}
