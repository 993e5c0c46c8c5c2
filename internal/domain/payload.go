package domain

type CategoryDTO struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName" binding:"required"`
}

type ProductDTO struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName" binding:"required"`
	Image        string  `json:"image"`
	Description  string  `json:"description" binding:"required,min=6"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"specialPrice"`
}

type CartDTO struct {
	CartID     int64        `json:"cartId"`
	TotalPrice float64      `json:"totalPrice"`
	Products   []ProductDTO `json:"products"`
}

// ImageUpload is an uploaded image file.
type ImageUpload struct {
	Filename string
	Data     []byte
}
