package port

import (
	"context"

	"sales/src/sales/domain/entity"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// SaleRepository define el contrato de persistencia para ventas
// La venta se persiste como aggregate completo (root + items)
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	// Delete elimina la venta y sus items; retorna false si no existía
	Delete(ctx context.Context, saleID uuid.UUID) (bool, error)
	List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*entity.Sale, int, error)
}
