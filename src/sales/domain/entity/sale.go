package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta (Aggregate Root)
// Contiene datos de cliente y sucursal, items y el cálculo del total
// El estado se modifica únicamente a través de los métodos del aggregate
type Sale struct {
	ID           uuid.UUID   `json:"id"`
	SaleNumber   string      `json:"sale_number"`
	Date         time.Time   `json:"date"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	BranchID     string      `json:"branch_id"`
	BranchName   string      `json:"branch_name"`
	IsCancelled  bool        `json:"is_cancelled"`
	Items        []*SaleItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

// NewSale crea una venta nueva, sin items y sin cancelar
func NewSale(saleNumber string, date time.Time, customerID, customerName, branchID, branchName string) *Sale {
	return &Sale{
		ID:           uuid.New(),
		SaleNumber:   saleNumber,
		Date:         date,
		CustomerID:   customerID,
		CustomerName: customerName,
		BranchID:     branchID,
		BranchName:   branchName,
		IsCancelled:  false,
		CreatedAt:    time.Now().UTC(),
	}
}

// AddItem agrega un item aplicando la tabla de descuentos por cantidad
// El descuento se evalúa una única vez al crear el item; si la cantidad
// supera el máximo no se agrega nada
func (s *Sale) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return ErrQuantityLimitExceeded
	}
	if !unitPrice.IsPositive() {
		return ErrInvalidUnitPrice
	}

	discount := DiscountForQuantity(quantity)
	item := newSaleItem(s.ID, productID, productName, quantity, unitPrice, discount)
	s.Items = append(s.Items, item)
	s.touch()
	return nil
}

// Cancel cancela la venta completa (idempotente)
func (s *Sale) Cancel() {
	if s.IsCancelled {
		return
	}
	s.IsCancelled = true
	s.touch()
}

// UpdateCustomer sobreescribe los datos desnormalizados del cliente
func (s *Sale) UpdateCustomer(customerID, customerName string) {
	s.CustomerID = customerID
	s.CustomerName = customerName
	s.touch()
}

// TotalAmount suma los totales de los items activos
// Los items cancelados no participan del total
func (s *Sale) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if item.IsCancelled {
			continue
		}
		total = total.Add(item.Total)
	}
	return total
}

// FindActiveItem retorna el item no cancelado para un producto, si existe
func (s *Sale) FindActiveItem(productID uuid.UUID) *SaleItem {
	for _, item := range s.Items {
		if item.ProductID == productID && !item.IsCancelled {
			return item
		}
	}
	return nil
}

// TotalItems retorna el número total de items (incluye cancelados)
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

func (s *Sale) touch() {
	now := time.Now().UTC()
	s.UpdatedAt = &now
}
