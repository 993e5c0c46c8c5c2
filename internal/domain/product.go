// domain/product.go
package domain

import "context"

// DefaultProductImage is stored on every new product until an image is uploaded.
const DefaultProductImage = "default.png"

type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"special_price"`
	CategoryID   int64   `json:"category_id"`
}

// SpecialPrice applies a percentage discount to price.
func SpecialPrice(price, discount float64) float64 {
	return price - ((discount * 0.01) * price)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, page PageRequest) ([]Product, int64, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	SearchProductsByCategory(ctx context.Context, categoryID int64, page PageRequest) ([]Product, int64, error)
	SearchProductsByKeyword(ctx context.Context, keyword string, page PageRequest) ([]Product, int64, error)
}

// FileStore persists uploaded images and returns the generated file name.
type FileStore interface {
	Store(ctx context.Context, dir, originalName string, data []byte) (string, error)
}
