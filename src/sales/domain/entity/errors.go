package entity

import "errors"

var (
	ErrSaleNotFound          = errors.New("sale not found")
	ErrInvalidQuantity       = errors.New("quantity must be greater than 0")
	ErrQuantityLimitExceeded = errors.New("cannot sell more than 20 identical items")
	ErrInvalidUnitPrice      = errors.New("unit_price must be greater than 0")
	ErrDuplicateSaleNumber   = errors.New("sale number already exists")
)
