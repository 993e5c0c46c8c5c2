package usecase

import "catalog_service/internal/domain"

func toCategoryDTO(c *domain.Category) domain.CategoryDTO {
	return domain.CategoryDTO{
		CategoryID:   c.ID,
		CategoryName: c.Name,
	}
}

func toProductDTO(p *domain.Product) domain.ProductDTO {
	return domain.ProductDTO{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Image:        p.Image,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}

// productFromDTO copies the client editable fields. Image, category and special price
// are owned by the use case.
func productFromDTO(dto *domain.ProductDTO) *domain.Product {
	return &domain.Product{
		Name:        dto.ProductName,
		Description: dto.Description,
		Quantity:    dto.Quantity,
		Price:       dto.Price,
		Discount:    dto.Discount,
	}
}

// toCartDTO derives the product list from the cart's current items.
func toCartDTO(c *domain.Cart) *domain.CartDTO {
	products := make([]domain.ProductDTO, 0, len(c.Items))
	for i := range c.Items {
		dto := toProductDTO(&c.Items[i].Product)
		dto.Quantity = c.Items[i].Quantity
		products = append(products, dto)
	}
	return &domain.CartDTO{
		CartID:     c.ID,
		TotalPrice: c.TotalPrice,
		Products:   products,
	}
}

func mapCategories(categories []domain.Category) []domain.CategoryDTO {
	dtos := make([]domain.CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}
	return dtos
}

func mapProducts(products []domain.Product) []domain.ProductDTO {
	dtos := make([]domain.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, toProductDTO(&products[i]))
	}
	return dtos
}
