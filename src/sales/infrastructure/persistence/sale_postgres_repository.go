package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	domainCriteria "sales/src/shared/domain/criteria"
	infraCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
// La venta se escribe siempre como aggregate completo dentro de una transacción
type SalePostgresRepository struct {
	db        *sql.DB
	converter *infraCriteria.SQLOrderConverter
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{db: db, converter: infraCriteria.NewSQLOrderConverter()}
}

// Create persiste una venta nueva con sus items
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (
			id, sale_number, date, customer_id, customer_name,
			branch_id, branch_name, is_cancelled, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.Date,
		sale.CustomerID,
		sale.CustomerName,
		sale.BranchID,
		sale.BranchName,
		sale.IsCancelled,
		sale.CreatedAt,
		sale.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrDuplicateSaleNumber
		}
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	if err := insertItems(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return sale, nil
}

// FindByID carga la venta con sus items (load aggregate)
func (r *SalePostgresRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	querySale := `
		SELECT id, sale_number, date, customer_id, customer_name,
		       branch_id, branch_name, is_cancelled, created_at, updated_at
		FROM sales
		WHERE id = $1
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, querySale, saleID).Scan(
		&sale.ID,
		&sale.SaleNumber,
		&sale.Date,
		&sale.CustomerID,
		&sale.CustomerName,
		&sale.BranchID,
		&sale.BranchName,
		&sale.IsCancelled,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	items, err := r.loadItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// Update reescribe la venta y sus items
// Los items se borran y reinsertan: el aggregate en memoria es la verdad
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		UPDATE sales
		SET sale_number = $2, date = $3, customer_id = $4, customer_name = $5,
		    branch_id = $6, branch_name = $7, is_cancelled = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.Date,
		sale.CustomerID,
		sale.CustomerName,
		sale.BranchID,
		sale.BranchName,
		sale.IsCancelled,
		sale.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, entity.ErrSaleNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return nil, fmt.Errorf("error clearing sale items: %w", err)
	}

	if err := insertItems(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return sale, nil
}

// Delete elimina la venta; los items caen por la FK en cascada
func (r *SalePostgresRepository) Delete(ctx context.Context, saleID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// List retorna una página de ventas con sus items y el total
func (r *SalePostgresRepository) List(ctx context.Context, page, pageSize int, orders []domainCriteria.Order) ([]*entity.Sale, int, error) {
	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting sales: %w", err)
	}

	offset := (page - 1) * pageSize

	querySales := `
		SELECT id, sale_number, date, customer_id, customer_name,
		       branch_id, branch_name, is_cancelled, created_at, updated_at
		FROM sales
		` + r.converter.OrderByClause(orders) + `
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, querySales, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SaleNumber,
			&sale.Date,
			&sale.CustomerID,
			&sale.CustomerName,
			&sale.BranchID,
			&sale.BranchName,
			&sale.IsCancelled,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating sales: %w", err)
	}

	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.ID)
		if err != nil {
			return nil, 0, err
		}
		sale.Items = items
	}

	return sales, totalCount, nil
}

// loadItems carga los items de una venta en su orden de inserción
func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]*entity.SaleItem, error) {
	queryItems := `
		SELECT id, sale_id, product_id, product_name,
		       quantity, unit_price, discount, total, is_cancelled
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, queryItems, saleID)
	if err != nil {
		return nil, fmt.Errorf("error finding sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		item := &entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.Total,
			&item.IsCancelled,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return items, nil
}

// insertItems inserta los items del aggregate preservando su orden
func insertItems(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name,
			quantity, unit_price, discount, total, is_cancelled, position
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	for i, item := range sale.Items {
		_, err := tx.ExecContext(ctx, queryItem,
			item.ID,
			sale.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.Total,
			item.IsCancelled,
			i,
		)
		if err != nil {
			return fmt.Errorf("error saving sale item for product %s: %w", item.ProductID, err)
		}
	}

	return nil
}

// isUniqueViolation detecta la violación de la restricción única de sale_number
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
