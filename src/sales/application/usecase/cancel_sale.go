package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// CancelSaleUseCase caso de uso para cancelar una venta completa
type CancelSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewCancelSaleUseCase crea una nueva instancia del caso de uso
func NewCancelSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute cancela la venta y publica SaleCancelled
// Cancelar una venta ya cancelada también es exitoso y vuelve a publicar
// el evento: la idempotencia vive en la bandera, no en el handler
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	if saleID == uuid.Nil {
		v := apperror.NewValidationError()
		v.Add("sale_id", "sale id is required")
		return nil, v
	}

	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("error loading sale: %w", err)
	}

	sale.Cancel()

	updated, err := uc.saleRepo.Update(ctx, sale)
	if err != nil {
		// La venta pudo ser borrada entre el FindByID y el Update
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	evt := event.NewSaleCancelled(updated.ID)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		log.Printf("WARNING: Failed to publish %s: %v", evt.EventType(), err)
	}

	return response.FromSale(updated), nil
}
