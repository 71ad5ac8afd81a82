package response

import (
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse representa un item en la proyección de una venta
type SaleItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	IsCancelled bool            `json:"is_cancelled"`
}

// SaleResponse proyección de una venta persistida
type SaleResponse struct {
	SaleID       uuid.UUID          `json:"sale_id"`
	SaleNumber   string             `json:"sale_number"`
	Date         time.Time          `json:"date"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	BranchID     string             `json:"branch_id"`
	BranchName   string             `json:"branch_name"`
	IsCancelled  bool               `json:"is_cancelled"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Items        []SaleItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}

// FromSale construye la proyección desde el aggregate
func FromSale(sale *entity.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Total:       item.Total,
			IsCancelled: item.IsCancelled,
		})
	}

	return &SaleResponse{
		SaleID:       sale.ID,
		SaleNumber:   sale.SaleNumber,
		Date:         sale.Date,
		CustomerID:   sale.CustomerID,
		CustomerName: sale.CustomerName,
		BranchID:     sale.BranchID,
		BranchName:   sale.BranchName,
		IsCancelled:  sale.IsCancelled,
		TotalAmount:  sale.TotalAmount(),
		Items:        items,
		CreatedAt:    sale.CreatedAt,
		UpdatedAt:    sale.UpdatedAt,
	}
}

// ListSalesResponse respuesta paginada del listado de ventas
type ListSalesResponse struct {
	Items      []*SaleResponse `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalCount int             `json:"total_count"`
}
