package usecase

import (
	"context"
	"errors"
	"fmt"

	"sales/src/product/application/request"
	"sales/src/product/application/response"
	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// UpdateProductUseCase caso de uso para actualizar un producto
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute carga el producto, aplica los cambios y persiste
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := req.Validate().ErrOrNil(); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, fmt.Errorf("error loading product: %w", err)
	}

	if err := product.Change(
		req.Title,
		req.Price,
		req.Description,
		req.Category,
		req.Image,
		entity.Rating{Rate: req.Rating.Rate, Count: req.Rating.Count},
	); err != nil {
		return nil, fmt.Errorf("error changing product: %w", err)
	}

	updated, err := uc.productRepo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return response.FromProduct(updated), nil
}
