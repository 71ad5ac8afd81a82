package usecase

import (
	"context"
	"errors"
	"fmt"

	"sales/src/product/application/response"
	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// GetProductUseCase caso de uso para obtener un producto por ID
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute retorna la proyección del producto
func (uc *GetProductUseCase) Execute(ctx context.Context, productID uuid.UUID) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, fmt.Errorf("error loading product: %w", err)
	}

	return response.FromProduct(product), nil
}
