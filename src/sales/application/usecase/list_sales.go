package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/criteria"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListSalesUseCase caso de uso para listar ventas con paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute retorna una página de ventas con el total de registros
func (uc *ListSalesUseCase) Execute(ctx context.Context, page, pageSize int, orders []criteria.Order) (*response.ListSalesResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sales, total, err := uc.saleRepo.List(ctx, page, pageSize, orders)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	items := make([]*response.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, response.FromSale(sale))
	}

	return &response.ListSalesResponse{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}
