package request

import "sales/src/shared/domain/apperror"

// UpdateSaleRequest representa la petición para actualizar una venta
// La lista de items es la foto completa deseada: los items existentes que
// no aparezcan serán cancelados por la reconciliación
type UpdateSaleRequest struct {
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	Items        []SaleItemRequest `json:"items"`
}

// Validate valida la forma de la petición y acumula todas las violaciones
func (r *UpdateSaleRequest) Validate() *apperror.ValidationError {
	v := apperror.NewValidationError()

	if r.CustomerID == "" {
		v.Add("customer_id", "customer id is required")
	}
	if r.CustomerName == "" {
		v.Add("customer_name", "customer name is required")
	} else if len(r.CustomerName) > 150 {
		v.Add("customer_name", "customer name must be 150 characters or less")
	}

	validateItems(v, r.Items)
	return v
}
