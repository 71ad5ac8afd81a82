package usecase

import (
	"context"
	"fmt"

	"sales/src/product/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// DeleteProductUseCase caso de uso para eliminar un producto
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute elimina el producto del catálogo
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uuid.UUID) error {
	if productID == uuid.Nil {
		v := apperror.NewValidationError()
		v.Add("product_id", "product id is required")
		return v
	}

	deleted, err := uc.productRepo.Delete(ctx, productID)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if !deleted {
		return apperror.NewNotFound("product", productID.String())
	}

	return nil
}
