package usecase

import (
	"context"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	AddProduct(ctx context.Context, categoryID int64, product *domain.ProductDTO) (*domain.ProductDTO, error)
	GetProductByID(ctx context.Context, id int64) (*domain.ProductDTO, error)
	ListProducts(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error)
	SearchProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error)
	SearchProductsByKeyword(ctx context.Context, keyword string, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error)
	UpdateProduct(ctx context.Context, id int64, product *domain.ProductDTO) (*domain.ProductDTO, error)
	DeleteProduct(ctx context.Context, id int64) (*domain.ProductDTO, error)
	UpdateProductImage(ctx context.Context, id int64, image domain.ImageUpload) (*domain.ProductDTO, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	cartRepo     domain.CartRepository
	carts        CartUseCase
	files        domain.FileStore
	imageDir     string
	log          *logrus.Logger
}

func NewProductUseCase(
	pRepo domain.ProductRepository,
	cRepo domain.CategoryRepository,
	cartRepo domain.CartRepository,
	carts CartUseCase,
	files domain.FileStore,
	imageDir string,
	logger *logrus.Logger,
) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		cartRepo:     cartRepo,
		carts:        carts,
		files:        files,
		imageDir:     imageDir,
		log:          logger,
	}
}

func (uc *productUseCase) AddProduct(ctx context.Context, categoryID int64, dto *domain.ProductDTO) (*domain.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to add product '%s' to category %d", dto.ProductName, categoryID)

	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product creation: %v", categoryID, err)
		return nil, err
	}

	existing, err := uc.productRepo.ListProductsByCategory(ctx, category.ID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products of category %d: %v", category.ID, err)
		return nil, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, dto.ProductName) {
			uc.log.Warnf("Use Case: Product '%s' already exists in category %d as ID %d", dto.ProductName, category.ID, p.ID)
			return nil, domain.NewAPIError("Product with the name %s already exist!", dto.ProductName)
		}
	}

	product := productFromDTO(dto)
	product.Image = domain.DefaultProductImage
	product.CategoryID = category.ID
	product.SpecialPrice = domain.SpecialPrice(product.Price, product.Discount)

	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", dto.ProductName, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.Name, created.ID)
	out := toProductDTO(created)
	return &out, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	out := toProductDTO(product)
	return &out, nil
}

// ListProducts never fails on an empty page, unlike the search operations.
func (uc *productUseCase) ListProducts(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	uc.log.Infof("Use Case: Listing products (page %d, size %d, sort %s %s)", page.Number, page.Size, page.SortBy, page.Direction)

	products, total, err := uc.productRepo.ListProducts(ctx, page)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	return NewPagedResponse(mapProducts(products), page, total), nil
}

func (uc *productUseCase) SearchProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found: %v", categoryID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Searching products of category %d (page %d, size %d)", categoryID, page.Number, page.Size)
	products, total, err := uc.productRepo.SearchProductsByCategory(ctx, category.ID, page)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search products of category %d: %v", categoryID, err)
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NewAPIError("%s category does not have any product", category.Name)
	}
	return NewPagedResponse(mapProducts(products), page, total), nil
}

func (uc *productUseCase) SearchProductsByKeyword(ctx context.Context, keyword string, page domain.PageRequest) (*domain.PagedResponse[domain.ProductDTO], error) {
	uc.log.Infof("Use Case: Searching products by keyword '%s' (page %d, size %d)", keyword, page.Number, page.Size)

	products, total, err := uc.productRepo.SearchProductsByKeyword(ctx, keyword, page)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search products by keyword '%s': %v", keyword, err)
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.NewAPIError("Product not found with keyword: %s", keyword)
	}
	return NewPagedResponse(mapProducts(products), page, total), nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, dto *domain.ProductDTO) (*domain.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to update product ID %d", id)

	existing, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}

	draft := productFromDTO(dto)
	existing.Name = draft.Name
	existing.Description = draft.Description
	existing.Quantity = draft.Quantity
	existing.Discount = draft.Discount
	existing.Price = draft.Price
	existing.SpecialPrice = domain.SpecialPrice(draft.Price, draft.Discount)

	saved, err := uc.productRepo.UpdateProduct(ctx, existing)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	carts, err := uc.cartRepo.FindCartsByProductID(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to find carts holding product ID %d: %v", id, err)
		return nil, err
	}
	for _, cart := range carts {
		if _, err := uc.carts.UpdateProductInCarts(ctx, cart.ID, id); err != nil {
			uc.log.Errorf("Use Case: Failed to refresh product %d in cart %d: %v", id, cart.ID, err)
			return nil, fmt.Errorf("product %d updated but cart %d not refreshed: %w", id, cart.ID, err)
		}
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d (%d carts refreshed)", saved.ID, len(carts))
	out := toProductDTO(saved)
	return &out, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)

	existing, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return nil, err
	}

	carts, err := uc.cartRepo.FindCartsByProductID(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to find carts holding product ID %d: %v", id, err)
		return nil, err
	}
	for _, cart := range carts {
		if _, err := uc.carts.DeleteProductFromCart(ctx, cart.ID, id); err != nil {
			uc.log.Errorf("Use Case: Failed to remove product %d from cart %d: %v", id, cart.ID, err)
			return nil, err
		}
	}

	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d (%d carts updated)", id, len(carts))
	out := toProductDTO(existing)
	return &out, nil
}

func (uc *productUseCase) UpdateProductImage(ctx context.Context, id int64, image domain.ImageUpload) (*domain.ProductDTO, error) {
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for image update: %v", id, err)
		return nil, err
	}

	fileName, err := uc.files.Store(ctx, uc.imageDir, image.Filename, image.Data)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to store image for product ID %d: %v", id, err)
		return nil, err
	}
	product.Image = fileName

	updated, err := uc.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to save image of product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Image '%s' stored for product ID %d", fileName, id)
	out := toProductDTO(updated)
	return &out, nil
}
