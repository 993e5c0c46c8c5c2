package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCartRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCartRepository(db *sql.DB, logger *logrus.Logger) domain.CartRepository {
	return &postgresCartRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCartRepository) GetCartByID(ctx context.Context, id int64) (*domain.Cart, error) {
	cart := &domain.Cart{}
	query := `SELECT id, user_id, total_price FROM carts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&cart.ID, &cart.UserID, &cart.TotalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Cart with ID %d not found", id)
			return nil, domain.NewNotFoundError("Cart", "cartId", id)
		}
		r.log.Errorf("Repository: Failed to get cart by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	items, err := r.getCartItems(ctx, id)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	r.log.Debugf("Repository: Cart %d retrieved with %d items", cart.ID, len(cart.Items))
	return cart, nil
}

func (r *postgresCartRepository) getCartItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `
        SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.discount, ci.product_price,
               p.id, p.name, p.image, p.description, p.quantity, p.price, p.discount, p.special_price, p.category_id
        FROM cart_items ci
        JOIN products p ON p.id = ci.product_id
        WHERE ci.cart_id = $1
        ORDER BY ci.id ASC`
	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		r.log.Errorf("Repository: Failed to query cart items for cart ID %d: %v", cartID, err)
		return nil, fmt.Errorf("could not retrieve cart items: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		p := &item.Product
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.Discount, &item.ProductPrice,
			&p.ID, &p.Name, &p.Image, &p.Description, &p.Quantity, &p.Price, &p.Discount, &p.SpecialPrice, &p.CategoryID,
		); err != nil {
			r.log.Errorf("Repository: Failed to scan cart item row for cart ID %d: %v", cartID, err)
			return nil, fmt.Errorf("error scanning cart item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during cart items iteration for cart ID %d: %v", cartID, err)
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}
	return items, nil
}

// FindCartsByProductID returns cart headers only; items are not loaded.
func (r *postgresCartRepository) FindCartsByProductID(ctx context.Context, productID int64) ([]domain.Cart, error) {
	query := `
        SELECT c.id, c.user_id, c.total_price
        FROM carts c
        WHERE EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = c.id AND ci.product_id = $1)
        ORDER BY c.id ASC`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		r.log.Errorf("Repository: Failed to find carts for product %d: %v", productID, err)
		return nil, fmt.Errorf("could not find carts by product: %w", err)
	}
	defer rows.Close()

	carts := []domain.Cart{}
	for rows.Next() {
		var cart domain.Cart
		if err := rows.Scan(&cart.ID, &cart.UserID, &cart.TotalPrice); err != nil {
			r.log.Errorf("Repository: Failed to scan cart row for product %d: %v", productID, err)
			return nil, fmt.Errorf("error scanning cart: %w", err)
		}
		carts = append(carts, cart)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during carts iteration for product %d: %v", productID, err)
		return nil, fmt.Errorf("error iterating carts: %w", err)
	}

	r.log.Infof("Repository: Product %d is referenced by %d carts", productID, len(carts))
	return carts, nil
}

func (r *postgresCartRepository) UpdateCartItemPrice(ctx context.Context, cartID, itemID int64, productPrice, discount, totalPrice float64) error {
	return r.inTx(ctx, "UpdateCartItemPrice", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE cart_items SET product_price = $1, discount = $2 WHERE id = $3 AND cart_id = $4`,
			productPrice, discount, itemID, cartID,
		); err != nil {
			return fmt.Errorf("could not update cart item %d: %w", itemID, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE carts SET total_price = $1 WHERE id = $2`, totalPrice, cartID); err != nil {
			return fmt.Errorf("could not update total of cart %d: %w", cartID, err)
		}
		return nil
	})
}

func (r *postgresCartRepository) DeleteCartItem(ctx context.Context, cartID, itemID int64, totalPrice float64) error {
	return r.inTx(ctx, "DeleteCartItem", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID); err != nil {
			return fmt.Errorf("could not delete cart item %d: %w", itemID, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE carts SET total_price = $1 WHERE id = $2`, totalPrice, cartID); err != nil {
			return fmt.Errorf("could not update total of cart %d: %w", cartID, err)
		}
		return nil
	})
}

// inTx runs fn in a transaction, committing on success and rolling back on error or panic.
func (r *postgresCartRepository) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Errorf("%s: Failed to begin transaction: %v", op, err)
		return fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Errorf("%s: Recovered from panic, rolling back transaction", op)
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("%s: Failed to rollback transaction: %v (original error: %v)", op, rbErr, err)
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				err = fmt.Errorf("failed to commit transaction: %w", cErr)
				r.log.Errorf("%s: %v", op, err)
			}
		}
	}()

	if err = fn(tx); err != nil {
		r.log.Warnf("%s: Rolling back transaction due to error: %v", op, err)
		return err
	}
	return nil
}
