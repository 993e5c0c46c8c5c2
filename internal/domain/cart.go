package domain

import "context"

type Cart struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	TotalPrice float64    `json:"total_price"`
	Items      []CartItem `json:"items"`
}

// CartItem keeps the price the product had when it was last synchronized.
type CartItem struct {
	ID           int64   `json:"id"`
	CartID       int64   `json:"cart_id"`
	ProductID    int64   `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Discount     float64 `json:"discount"`
	ProductPrice float64 `json:"product_price"`
	Product      Product `json:"product"`
}

// ItemFor returns the line referencing productID, or nil.
func (c *Cart) ItemFor(productID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

type CartRepository interface {
	GetCartByID(ctx context.Context, id int64) (*Cart, error)
	FindCartsByProductID(ctx context.Context, productID int64) ([]Cart, error)
	UpdateCartItemPrice(ctx context.Context, cartID, itemID int64, productPrice, discount, totalPrice float64) error
	DeleteCartItem(ctx context.Context, cartID, itemID int64, totalPrice float64) error
}
