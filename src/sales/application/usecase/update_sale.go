package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	productPort "sales/src/product/domain/port"
	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// UpdateSaleUseCase caso de uso para actualizar una venta existente
type UpdateSaleUseCase struct {
	saleRepo    port.SaleRepository
	productRepo productPort.ProductRepository
	publisher   port.EventPublisher
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, productRepo productPort.ProductRepository, publisher port.EventPublisher) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Execute aplica la actualización con reconciliación de items:
// los items existentes ausentes de la petición se cancelan, y cada item
// entrante reemplaza (cancela y reinserta) al item activo del mismo
// producto, recalculando el descuento desde cero. Nunca se edita un item
// en el lugar.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.UpdateSaleRequest) (*response.SaleResponse, error) {
	if err := req.Validate().ErrOrNil(); err != nil {
		return nil, err
	}

	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("error loading sale: %w", err)
	}

	sale.UpdateCustomer(req.CustomerID, req.CustomerName)

	// Productos presentes en la petición
	incoming := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		incoming[item.ProductID] = true
	}

	// Cancelar los items que estaban en la venta pero no vinieron en la petición
	var removed []*entity.SaleItem
	for _, existing := range sale.Items {
		if !incoming[existing.ProductID] && !existing.IsCancelled {
			existing.Cancel()
			removed = append(removed, existing)
		}
	}

	// Reemplazar o agregar los items entrantes
	for _, itemReq := range req.Items {
		if err := resolveProduct(ctx, uc.productRepo, itemReq.ProductID); err != nil {
			return nil, err
		}

		// Cancelar el item activo del mismo producto antes de reinsertarlo
		if existing := sale.FindActiveItem(itemReq.ProductID); existing != nil {
			existing.Cancel()
		}

		if err := addItem(sale, itemReq); err != nil {
			return nil, err
		}
	}

	updated, err := uc.saleRepo.Update(ctx, sale)
	if err != nil {
		// La venta pudo ser borrada entre el FindByID y el Update
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	modified := event.NewSaleModified(updated.ID, updated.SaleNumber, updated.TotalAmount())
	if err := uc.publisher.Publish(ctx, modified); err != nil {
		log.Printf("WARNING: Failed to publish %s: %v", modified.EventType(), err)
	}

	// Un ItemCancelled por item removido, después del SaleModified y en orden
	for _, item := range removed {
		cancelled := event.NewItemCancelled(updated.ID, item.ProductID, item.ProductName)
		if err := uc.publisher.Publish(ctx, cancelled); err != nil {
			log.Printf("WARNING: Failed to publish %s: %v", cancelled.EventType(), err)
		}
	}

	return response.FromSale(updated), nil
}
