package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Teclado", decimal.NewFromInt(50), "Mecánico", "Periféricos", "img.png", Rating{Rate: 4.5, Count: 12})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Teclado", product.Title)
	assert.Nil(t, product.UpdatedAt)
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := NewProduct("", decimal.NewFromInt(50), "", "", "", Rating{})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = NewProduct("Teclado", decimal.Zero, "", "", "", Rating{})
	assert.ErrorIs(t, err, ErrInvalidProductPrice)
}

func TestProduct_Change(t *testing.T) {
	product, err := NewProduct("Teclado", decimal.NewFromInt(50), "", "", "", Rating{})
	require.NoError(t, err)

	err = product.Change("Teclado Pro", decimal.NewFromInt(80), "Mecánico", "Periféricos", "img.png", Rating{Rate: 4.8, Count: 30})
	require.NoError(t, err)

	assert.Equal(t, "Teclado Pro", product.Title)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(80)))
	assert.NotNil(t, product.UpdatedAt)

	err = product.Change("", decimal.NewFromInt(80), "", "", "", Rating{})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, "Teclado Pro", product.Title, "failed change must not mutate the product")
}
