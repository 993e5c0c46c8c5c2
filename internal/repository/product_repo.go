package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const productColumns = `id, name, image, description, quantity, price, discount, special_price, category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *domain.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Image,
		&product.Description,
		&product.Quantity,
		&product.Price,
		&product.Discount,
		&product.SpecialPrice,
		&product.CategoryID,
	)
}

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, image, description, quantity, price, discount, special_price, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Image,
		product.Description,
		product.Quantity,
		product.Price,
		product.Discount,
		product.SpecialPrice,
		product.CategoryID,
	).Scan(&product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Repository: Attempted to create product with non-existent category ID: %d", product.CategoryID)
			return nil, domain.NewNotFoundError("Category", "categoryId", product.CategoryID)
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Repository: Product created with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product := &domain.Product{}
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Product with ID %d not found", id)
			return nil, domain.NewNotFoundError("Product", "productId", id)
		}
		r.log.Errorf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET name = $1, image = $2, description = $3, quantity = $4,
            price = $5, discount = $6, special_price = $7, category_id = $8
        WHERE id = $9
        RETURNING ` + productColumns

	updated := &domain.Product{}
	err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Image,
		product.Description,
		product.Quantity,
		product.Price,
		product.Discount,
		product.SpecialPrice,
		product.CategoryID,
		product.ID,
	), updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Product with ID %d not found for update", product.ID)
			return nil, domain.NewNotFoundError("Product", "productId", product.ID)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Repository: Check constraint violation for product update ID %d: %s", product.ID, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Repository: Failed to update product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	r.log.Infof("Repository: Product updated with ID: %d", updated.ID)
	return updated, nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %d", id)
		return domain.NewNotFoundError("Product", "productId", id)
	}
	r.log.Infof("Repository: Product deleted with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, page domain.PageRequest) ([]domain.Product, int64, error) {
	order, err := orderBy(productSortColumns, page)
	if err != nil {
		r.log.Warnf("Repository: Rejected product sort: %v", err)
		return nil, 0, err
	}
	return r.queryPage(ctx, "", order, page)
}

func (r *postgresProductRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		r.log.Errorf("Repository: Failed to read products for category %d: %v", categoryID, err)
		return nil, err
	}
	return products, nil
}

// SearchProductsByCategory orders by ascending price first; the requested sort breaks ties.
func (r *postgresProductRepository) SearchProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) ([]domain.Product, int64, error) {
	order, err := orderBy(productSortColumns, page)
	if err != nil {
		r.log.Warnf("Repository: Rejected product sort: %v", err)
		return nil, 0, err
	}
	return r.queryPage(ctx, "category_id = $1", "price ASC, "+order, page, categoryID)
}

func (r *postgresProductRepository) SearchProductsByKeyword(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Product, int64, error) {
	order, err := orderBy(productSortColumns, page)
	if err != nil {
		r.log.Warnf("Repository: Rejected product sort: %v", err)
		return nil, 0, err
	}
	return r.queryPage(ctx, "name ILIKE $1", order, page, containsPattern(keyword))
}

// queryPage counts and fetches one page of products. where may reference args as $1..$n;
// limit and offset are appended after them.
func (r *postgresProductRepository) queryPage(ctx context.Context, where, order string, page domain.PageRequest, args ...any) ([]domain.Product, int64, error) {
	filter := ""
	if where != "" {
		filter = " WHERE " + where
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+filter, args...).Scan(&total); err != nil {
		r.log.Errorf("Repository: Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, filter, order, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), page.Size, page.Offset())

	r.log.Debugf("Repository: Executing product page query: %s with args: %v", query, pageArgs)
	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products (page %d, size %d): %v", page.Number, page.Size, err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		r.log.Errorf("Repository: Failed to read product page: %v", err)
		return nil, 0, err
	}

	r.log.Infof("Repository: Retrieved %d of %d products (page %d, size %d)", len(products), total, page.Number, page.Size)
	return products, total, nil
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
