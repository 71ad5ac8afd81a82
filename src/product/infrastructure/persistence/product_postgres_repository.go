package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	domainCriteria "sales/src/shared/domain/criteria"
	infraCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *infraCriteria.SQLOrderConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db, converter: infraCriteria.NewSQLOrderConverter()}
}

// Create persiste un producto nuevo
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (
			id, title, price, description, category, image,
			rating_rate, rating_count, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Category,
		product.Image,
		product.Rating.Rate,
		product.Rating.Count,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return product, nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, title, price, description, category, image,
		       rating_rate, rating_count, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Title,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.Image,
		&product.Rating.Rate,
		&product.Rating.Count,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// Update reescribe los datos del producto
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products
		SET title = $2, price = $3, description = $4, category = $5,
		    image = $6, rating_rate = $7, rating_count = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Category,
		product.Image,
		product.Rating.Rate,
		product.Rating.Count,
		product.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, entity.ErrProductNotFound
	}

	return product, nil
}

// Delete elimina el producto; retorna false si no existía
func (r *ProductPostgresRepository) Delete(ctx context.Context, productID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return false, fmt.Errorf("error deleting product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// List retorna una página de productos con el total
func (r *ProductPostgresRepository) List(ctx context.Context, page, pageSize int, orders []domainCriteria.Order) ([]*entity.Product, int, error) {
	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	offset := (page - 1) * pageSize

	query := `
		SELECT id, title, price, description, category, image,
		       rating_rate, rating_count, created_at, updated_at
		FROM products
		` + r.converter.OrderByClause(orders) + `
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Price,
			&product.Description,
			&product.Category,
			&product.Image,
			&product.Rating.Rate,
			&product.Rating.Count,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}
