package usecase

import (
	"context"
	"fmt"
	"log"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// DeleteSaleUseCase caso de uso para eliminar una venta definitivamente
// La eliminación es independiente de la cancelación: una venta activa
// puede eliminarse directamente
type DeleteSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute elimina la venta y publica SaleDeleted
// Si la venta no existe no se publica ningún evento
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) error {
	if saleID == uuid.Nil {
		v := apperror.NewValidationError()
		v.Add("sale_id", "sale id is required")
		return v
	}

	deleted, err := uc.saleRepo.Delete(ctx, saleID)
	if err != nil {
		return fmt.Errorf("error deleting sale: %w", err)
	}
	if !deleted {
		return apperror.NewNotFound("sale", saleID.String())
	}

	evt := event.NewSaleDeleted(saleID)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		log.Printf("WARNING: Failed to publish %s: %v", evt.EventType(), err)
	}

	return nil
}
