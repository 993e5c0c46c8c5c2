package usecase

import (
	"context"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.CategoryDTO], error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.CategoryDTO, error)
	CreateCategory(ctx context.Context, category *domain.CategoryDTO) (*domain.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id int64, category *domain.CategoryDTO) (*domain.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id int64) (*domain.CategoryDTO, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	cartRepo     domain.CartRepository
	carts        CartUseCase
	log          *logrus.Logger
}

func NewCategoryUseCase(
	repo domain.CategoryRepository,
	productRepo domain.ProductRepository,
	cartRepo domain.CartRepository,
	carts CartUseCase,
	logger *logrus.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		carts:        carts,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, page domain.PageRequest) (*domain.PagedResponse[domain.CategoryDTO], error) {
	uc.log.Infof("Use Case: Listing categories (page %d, size %d, sort %s %s)", page.Number, page.Size, page.SortBy, page.Direction)

	categories, total, err := uc.categoryRepo.ListCategories(ctx, page)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	if len(categories) == 0 {
		uc.log.Warnf("Use Case: Category page %d is empty", page.Number)
		return nil, domain.NewAPIError("No category created till now")
	}

	return NewPagedResponse(mapCategories(categories), page, total), nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int64) (*domain.CategoryDTO, error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	dto := toCategoryDTO(category)
	return &dto, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, category *domain.CategoryDTO) (*domain.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to create category with name '%s'", category.CategoryName)

	existing, err := uc.categoryRepo.FindCategoryByName(ctx, category.CategoryName)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to look up category '%s': %v", category.CategoryName, err)
		return nil, err
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Category '%s' already exists with ID %d", category.CategoryName, existing.ID)
		return nil, domain.NewAPIError("Category with the name %s already exists !!!", category.CategoryName)
	}

	created, err := uc.categoryRepo.CreateCategory(ctx, &domain.Category{Name: category.CategoryName})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.CategoryName, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", created.Name, created.ID)
	dto := toCategoryDTO(created)
	return &dto, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, category *domain.CategoryDTO) (*domain.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to update category ID %d", id)

	existing, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for update: %v", id, err)
		return nil, err
	}
	existing.Name = category.CategoryName

	updated, err := uc.categoryRepo.UpdateCategory(ctx, existing)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updated.ID)
	dto := toCategoryDTO(updated)
	return &dto, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) (*domain.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)

	existing, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for delete: %v", id, err)
		return nil, err
	}

	// Products go with their category, so their cart lines are removed first.
	products, err := uc.productRepo.ListProductsByCategory(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products of category %d: %v", id, err)
		return nil, err
	}
	for _, product := range products {
		carts, err := uc.cartRepo.FindCartsByProductID(ctx, product.ID)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to find carts holding product ID %d: %v", product.ID, err)
			return nil, err
		}
		for _, cart := range carts {
			if _, err := uc.carts.DeleteProductFromCart(ctx, cart.ID, product.ID); err != nil {
				uc.log.Errorf("Use Case: Failed to remove product %d from cart %d: %v", product.ID, cart.ID, err)
				return nil, err
			}
		}
	}

	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d (%d products removed)", id, len(products))
	dto := toCategoryDTO(existing)
	return &dto, nil
}
