package usecase

import (
	"context"
	"errors"
	"fmt"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// GetSaleUseCase caso de uso para obtener una venta por ID
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute retorna la proyección de la venta con sus items
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("error loading sale: %w", err)
	}

	return response.FromSale(sale), nil
}
