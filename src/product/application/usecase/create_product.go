package usecase

import (
	"context"
	"fmt"

	"sales/src/product/application/request"
	"sales/src/product/application/response"
	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
)

// CreateProductUseCase caso de uso para crear un producto
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute valida, construye y persiste el producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := req.Validate().ErrOrNil(); err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(
		req.Title,
		req.Price,
		req.Description,
		req.Category,
		req.Image,
		entity.Rating{Rate: req.Rating.Rate, Count: req.Rating.Count},
	)
	if err != nil {
		return nil, fmt.Errorf("error creating product entity: %w", err)
	}

	created, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return response.FromProduct(created), nil
}
