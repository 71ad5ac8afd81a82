package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rating valoración agregada de un producto
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product representa un producto del catálogo
// Las ventas referencian productos por ID y desnormalizan el nombre
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// NewProduct crea un producto nuevo validado
func NewProduct(title string, price decimal.Decimal, description, category, image string, rating Rating) (*Product, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidProductPrice
	}

	return &Product{
		ID:          uuid.New(),
		Title:       title,
		Price:       price,
		Description: description,
		Category:    category,
		Image:       image,
		Rating:      rating,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Change actualiza los datos del producto
func (p *Product) Change(title string, price decimal.Decimal, description, category, image string, rating Rating) error {
	if title == "" {
		return ErrTitleRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidProductPrice
	}

	p.Title = title
	p.Price = price
	p.Description = description
	p.Category = category
	p.Image = image
	p.Rating = rating
	now := time.Now().UTC()
	p.UpdatedAt = &now
	return nil
}
