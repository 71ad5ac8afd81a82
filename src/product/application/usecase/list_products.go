package usecase

import (
	"context"
	"fmt"

	"sales/src/product/application/response"
	"sales/src/product/domain/port"
	"sales/src/shared/domain/criteria"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListProductsUseCase caso de uso para listar productos con paginación
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute retorna una página de productos con el total de registros
func (uc *ListProductsUseCase) Execute(ctx context.Context, page, pageSize int, orders []criteria.Order) (*response.ListProductsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	products, total, err := uc.productRepo.List(ctx, page, pageSize, orders)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	items := make([]*response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.FromProduct(product))
	}

	return &response.ListProductsResponse{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}
