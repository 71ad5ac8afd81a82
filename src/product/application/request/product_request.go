package request

import (
	"sales/src/shared/domain/apperror"

	"github.com/shopspring/decimal"
)

// RatingRequest valoración del producto
type RatingRequest struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// ProductRequest representa la petición para crear o actualizar un producto
type ProductRequest struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      RatingRequest   `json:"rating"`
}

// Validate valida la forma de la petición y acumula todas las violaciones
func (r *ProductRequest) Validate() *apperror.ValidationError {
	v := apperror.NewValidationError()

	if r.Title == "" {
		v.Add("title", "title is required")
	} else if len(r.Title) > 150 {
		v.Add("title", "title must be 150 characters or less")
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		v.Add("price", "price must be greater than 0")
	}
	if len(r.Description) > 500 {
		v.Add("description", "description must be 500 characters or less")
	}
	if len(r.Category) > 100 {
		v.Add("category", "category must be 100 characters or less")
	}
	if r.Rating.Rate < 0 || r.Rating.Rate > 5 {
		v.Add("rating.rate", "rate must be between 0 and 5")
	}
	if r.Rating.Count < 0 {
		v.Add("rating.count", "count must be greater than or equal to 0")
	}

	return v
}
