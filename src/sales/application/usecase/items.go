package usecase

import (
	"context"
	"errors"
	"fmt"

	productEntity "sales/src/product/domain/entity"
	productPort "sales/src/product/domain/port"
	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// resolveProduct verifica que el producto exista en el catálogo
// Un producto inexistente invalida el comando completo
func resolveProduct(ctx context.Context, products productPort.ProductRepository, productID uuid.UUID) error {
	_, err := products.FindByID(ctx, productID)
	if err == nil {
		return nil
	}
	if errors.Is(err, productEntity.ErrProductNotFound) {
		v := apperror.NewValidationError()
		v.Addf("items", "product with ID '%s' does not exist in the system", productID)
		return v
	}
	return fmt.Errorf("error resolving product %s: %w", productID, err)
}

// addItem agrega el item a la venta reportando los errores de dominio
// (cantidad fuera de rango) como violaciones de validación
func addItem(sale *entity.Sale, itemReq request.SaleItemRequest) error {
	if err := sale.AddItem(itemReq.ProductID, itemReq.ProductName, itemReq.Quantity, itemReq.UnitPrice); err != nil {
		v := apperror.NewValidationError()
		v.Addf("items", "error adding item '%s': %v", itemReq.ProductName, err)
		return v
	}
	return nil
}
