package request

import (
	"fmt"
	"time"

	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa un item dentro de una venta
type SaleItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest representa la petición para registrar una venta
// sale_number es opcional: si viene vacío el servicio genera uno
type CreateSaleRequest struct {
	SaleNumber   string            `json:"sale_number"`
	Date         time.Time         `json:"date"`
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	BranchID     string            `json:"branch_id"`
	BranchName   string            `json:"branch_name"`
	Items        []SaleItemRequest `json:"items"`
}

// Validate valida la forma de la petición y acumula todas las violaciones
func (r *CreateSaleRequest) Validate() *apperror.ValidationError {
	v := apperror.NewValidationError()

	if len(r.SaleNumber) > 50 {
		v.Add("sale_number", "sale number must be 50 characters or less")
	}
	if !r.Date.IsZero() && r.Date.After(time.Now().UTC()) {
		v.Add("date", "sale date cannot be in the future")
	}
	if r.CustomerID == "" {
		v.Add("customer_id", "customer id is required")
	}
	if r.CustomerName == "" {
		v.Add("customer_name", "customer name is required")
	} else if len(r.CustomerName) > 150 {
		v.Add("customer_name", "customer name must be 150 characters or less")
	}
	if r.BranchID == "" {
		v.Add("branch_id", "branch id is required")
	}
	if r.BranchName == "" {
		v.Add("branch_name", "branch name is required")
	} else if len(r.BranchName) > 150 {
		v.Add("branch_name", "branch name must be 150 characters or less")
	}

	validateItems(v, r.Items)
	return v
}

// validateItems aplica las reglas comunes a la lista de items de una venta:
// al menos un item, sin productos duplicados y cada item bien formado
func validateItems(v *apperror.ValidationError, items []SaleItemRequest) {
	if len(items) == 0 {
		v.Add("items", "sale must contain at least one item")
		return
	}

	seen := make(map[uuid.UUID]bool, len(items))
	for i, item := range items {
		field := fmt.Sprintf("items[%d]", i)

		if item.ProductID == uuid.Nil {
			v.Add(field+".product_id", "product id is required")
		} else if seen[item.ProductID] {
			v.Add(field+".product_id", "duplicate product entries are not allowed")
		}
		seen[item.ProductID] = true

		if item.ProductName == "" {
			v.Add(field+".product_name", "product name is required")
		} else if len(item.ProductName) > 150 {
			v.Add(field+".product_name", "product name must be 150 characters or less")
		}
		if item.Quantity <= 0 {
			v.Add(field+".quantity", "quantity must be greater than 0")
		} else if item.Quantity > 20 {
			v.Add(field+".quantity", "cannot sell more than 20 identical items")
		}
		if item.UnitPrice.LessThanOrEqual(decimal.Zero) {
			v.Add(field+".unit_price", "unit price must be greater than 0")
		}
	}
}
