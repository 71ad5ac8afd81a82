package port

import (
	"context"

	"sales/src/product/domain/entity"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define el contrato de persistencia para productos
// FindByID retorna entity.ErrProductNotFound cuando el producto no existe
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Delete elimina el producto; retorna false si no existía
	Delete(ctx context.Context, productID uuid.UUID) (bool, error)
	List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*entity.Product, int, error)
}
