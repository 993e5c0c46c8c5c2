package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartUseCase keeps cart lines in step with the products they reference.
// Each call touches exactly one cart.
type CartUseCase interface {
	UpdateProductInCarts(ctx context.Context, cartID, productID int64) (*domain.CartDTO, error)
	DeleteProductFromCart(ctx context.Context, cartID, productID int64) (string, error)
}

type cartUseCase struct {
	cartRepo    domain.CartRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(cartRepo domain.CartRepository, productRepo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *cartUseCase) UpdateProductInCarts(ctx context.Context, cartID, productID int64) (*domain.CartDTO, error) {
	cart, err := uc.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		uc.log.Warnf("Use Case: Cart %d not available for product %d refresh: %v", cartID, productID, err)
		return nil, err
	}

	item := cart.ItemFor(productID)
	if item == nil {
		uc.log.Infof("Use Case: Cart %d no longer holds product %d, nothing to refresh", cartID, productID)
		return toCartDTO(cart), nil
	}

	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		uc.log.Warnf("Use Case: Product %d not available for cart %d refresh: %v", productID, cartID, err)
		return nil, err
	}

	quantity := decimal.NewFromInt(int64(item.Quantity))
	oldLine := decimal.NewFromFloat(item.ProductPrice).Mul(quantity)
	newLine := decimal.NewFromFloat(product.SpecialPrice).Mul(quantity)
	total := decimal.NewFromFloat(cart.TotalPrice).Sub(oldLine).Add(newLine).InexactFloat64()

	if err := uc.cartRepo.UpdateCartItemPrice(ctx, cart.ID, item.ID, product.SpecialPrice, product.Discount, total); err != nil {
		uc.log.Errorf("Use Case: Failed to refresh product %d in cart %d: %v", productID, cartID, err)
		return nil, err
	}

	item.ProductPrice = product.SpecialPrice
	item.Discount = product.Discount
	item.Product = *product
	cart.TotalPrice = total

	uc.log.Infof("Use Case: Product %d refreshed in cart %d, total now %.2f", productID, cartID, total)
	return toCartDTO(cart), nil
}

func (uc *cartUseCase) DeleteProductFromCart(ctx context.Context, cartID, productID int64) (string, error) {
	cart, err := uc.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		uc.log.Warnf("Use Case: Cart %d not available for product %d removal: %v", cartID, productID, err)
		return "", err
	}

	item := cart.ItemFor(productID)
	if item == nil {
		uc.log.Infof("Use Case: Cart %d does not hold product %d, nothing to remove", cartID, productID)
		return fmt.Sprintf("Product with id %d is not in the cart", productID), nil
	}

	line := decimal.NewFromFloat(item.ProductPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
	total := decimal.NewFromFloat(cart.TotalPrice).Sub(line).InexactFloat64()

	if err := uc.cartRepo.DeleteCartItem(ctx, cart.ID, item.ID, total); err != nil {
		uc.log.Errorf("Use Case: Failed to remove product %d from cart %d: %v", productID, cartID, err)
		return "", err
	}

	uc.log.Infof("Use Case: Product %d removed from cart %d, total now %.2f", productID, cartID, total)
	return fmt.Sprintf("Product %s removed from the cart !!!", item.Product.Name), nil
}
