package migrations

import (
	"database/sql"
	"fmt"
)

// Los identificadores de cliente y sucursal vienen de sistemas externos
// y se guardan como texto opaco, no como UUID
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
        id UUID PRIMARY KEY,
        title VARCHAR(150) NOT NULL,
        price NUMERIC(18, 2) NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        category VARCHAR(100) NOT NULL DEFAULT '',
        image TEXT NOT NULL DEFAULT '',
        rating_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
        rating_count INTEGER NOT NULL DEFAULT 0,
        created_at TIMESTAMPTZ NOT NULL,
        updated_at TIMESTAMPTZ
    );`,
	`CREATE TABLE IF NOT EXISTS sales (
        id UUID PRIMARY KEY,
        sale_number VARCHAR(50) NOT NULL UNIQUE,
        date TIMESTAMPTZ NOT NULL,
        customer_id VARCHAR(100) NOT NULL,
        customer_name VARCHAR(150) NOT NULL,
        branch_id VARCHAR(100) NOT NULL,
        branch_name VARCHAR(150) NOT NULL,
        is_cancelled BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL,
        updated_at TIMESTAMPTZ
    );`,
	`CREATE TABLE IF NOT EXISTS sale_items (
        id UUID PRIMARY KEY,
        sale_id UUID NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
        product_id UUID NOT NULL,
        product_name VARCHAR(150) NOT NULL,
        quantity INTEGER NOT NULL,
        unit_price NUMERIC(18, 2) NOT NULL,
        discount NUMERIC(5, 2) NOT NULL DEFAULT 0,
        total NUMERIC(18, 2) NOT NULL,
        is_cancelled BOOLEAN NOT NULL DEFAULT FALSE,
        position INTEGER NOT NULL DEFAULT 0
    );`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items(sale_id);`,
}

// Run crea el esquema requerido por el servicio de ventas
func Run(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
