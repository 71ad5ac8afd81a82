package entity

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidProductPrice = errors.New("price must be greater than 0")
)
