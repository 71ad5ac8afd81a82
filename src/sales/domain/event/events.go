// Package event define los eventos de dominio del contexto de ventas.
// Cada evento es un valor inmutable que captura su timestamp al construirse
// y se publica después de una persistencia exitosa.
package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event interfaz base para eventos de dominio
type Event interface {
	EventType() string
	OccurredAt() time.Time
}

// Tipos de evento; se usan también como subject de publicación
const (
	TypeSaleCreated   = "sales.sale.created"
	TypeSaleModified  = "sales.sale.modified"
	TypeSaleCancelled = "sales.sale.cancelled"
	TypeSaleDeleted   = "sales.sale.deleted"
	TypeItemCancelled = "sales.sale.item_cancelled"
)

// SaleCreated se emite cuando se registra una venta nueva
type SaleCreated struct {
	SaleID      uuid.UUID       `json:"sale_id"`
	SaleNumber  string          `json:"sale_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Timestamp   time.Time       `json:"occurred_at"`
}

// NewSaleCreated construye el evento capturando el timestamp actual
func NewSaleCreated(saleID uuid.UUID, saleNumber string, totalAmount decimal.Decimal) SaleCreated {
	return SaleCreated{
		SaleID:      saleID,
		SaleNumber:  saleNumber,
		TotalAmount: totalAmount,
		Timestamp:   time.Now().UTC(),
	}
}

func (e SaleCreated) EventType() string     { return TypeSaleCreated }
func (e SaleCreated) OccurredAt() time.Time { return e.Timestamp }

// SaleModified se emite cuando una venta existente fue actualizada
type SaleModified struct {
	SaleID      uuid.UUID       `json:"sale_id"`
	SaleNumber  string          `json:"sale_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Timestamp   time.Time       `json:"occurred_at"`
}

// NewSaleModified construye el evento capturando el timestamp actual
func NewSaleModified(saleID uuid.UUID, saleNumber string, totalAmount decimal.Decimal) SaleModified {
	return SaleModified{
		SaleID:      saleID,
		SaleNumber:  saleNumber,
		TotalAmount: totalAmount,
		Timestamp:   time.Now().UTC(),
	}
}

func (e SaleModified) EventType() string     { return TypeSaleModified }
func (e SaleModified) OccurredAt() time.Time { return e.Timestamp }

// SaleCancelled se emite cuando una venta fue cancelada
type SaleCancelled struct {
	SaleID    uuid.UUID `json:"sale_id"`
	Timestamp time.Time `json:"occurred_at"`
}

// NewSaleCancelled construye el evento capturando el timestamp actual
func NewSaleCancelled(saleID uuid.UUID) SaleCancelled {
	return SaleCancelled{SaleID: saleID, Timestamp: time.Now().UTC()}
}

func (e SaleCancelled) EventType() string     { return TypeSaleCancelled }
func (e SaleCancelled) OccurredAt() time.Time { return e.Timestamp }

// SaleDeleted se emite cuando una venta fue eliminada definitivamente
type SaleDeleted struct {
	SaleID    uuid.UUID `json:"sale_id"`
	Timestamp time.Time `json:"occurred_at"`
}

// NewSaleDeleted construye el evento capturando el timestamp actual
func NewSaleDeleted(saleID uuid.UUID) SaleDeleted {
	return SaleDeleted{SaleID: saleID, Timestamp: time.Now().UTC()}
}

func (e SaleDeleted) EventType() string     { return TypeSaleDeleted }
func (e SaleDeleted) OccurredAt() time.Time { return e.Timestamp }

// ItemCancelled se emite por cada item removido de una venta durante una actualización
type ItemCancelled struct {
	SaleID      uuid.UUID `json:"sale_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Timestamp   time.Time `json:"occurred_at"`
}

// NewItemCancelled construye el evento capturando el timestamp actual
func NewItemCancelled(saleID, productID uuid.UUID, productName string) ItemCancelled {
	return ItemCancelled{
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: productName,
		Timestamp:   time.Now().UTC(),
	}
}

func (e ItemCancelled) EventType() string     { return TypeItemCancelled }
func (e ItemCancelled) OccurredAt() time.Time { return e.Timestamp }
