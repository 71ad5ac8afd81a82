package response

import (
	"time"

	"sales/src/product/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse proyección de un producto del catálogo
type ProductResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      entity.Rating   `json:"rating"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// FromProduct construye la proyección desde la entidad
func FromProduct(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ProductID:   product.ID,
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		Image:       product.Image,
		Rating:      product.Rating,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ListProductsResponse respuesta paginada del listado de productos
type ListProductsResponse struct {
	Items      []*ProductResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int                `json:"total_count"`
}
