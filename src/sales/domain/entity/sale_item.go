package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa un item dentro de una venta (Entity dentro del Aggregate)
// Inmutable después de su creación, salvo la bandera de cancelación
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	IsCancelled bool            `json:"is_cancelled"`
}

// newSaleItem crea un nuevo item con el total calculado
// Solo Sale.AddItem crea items; el descuento nunca lo fija el caller
func newSaleItem(saleID, productID uuid.UUID, productName string, quantity int, unitPrice, discount decimal.Decimal) *SaleItem {
	qty := decimal.NewFromInt(int64(quantity))
	total := qty.Mul(unitPrice).Mul(decimal.NewFromInt(1).Sub(discount))

	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
		Total:       total,
		IsCancelled: false,
	}
}

// Cancel cancela el item (idempotente, no toca el Sale padre)
func (i *SaleItem) Cancel() {
	if i.IsCancelled {
		return
	}
	i.IsCancelled = true
}
