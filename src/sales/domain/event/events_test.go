package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventTypes(t *testing.T) {
	saleID := uuid.New()

	assert.Equal(t, "sales.sale.created", NewSaleCreated(saleID, "S-1", decimal.Zero).EventType())
	assert.Equal(t, "sales.sale.modified", NewSaleModified(saleID, "S-1", decimal.Zero).EventType())
	assert.Equal(t, "sales.sale.cancelled", NewSaleCancelled(saleID).EventType())
	assert.Equal(t, "sales.sale.deleted", NewSaleDeleted(saleID).EventType())
	assert.Equal(t, "sales.sale.item_cancelled", NewItemCancelled(saleID, uuid.New(), "Teclado").EventType())
}

func TestEventsCaptureTimestamp(t *testing.T) {
	before := time.Now().UTC()
	evt := NewSaleCreated(uuid.New(), "S-1", decimal.NewFromInt(100))
	after := time.Now().UTC()

	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestSaleCreatedCarriesTotal(t *testing.T) {
	total := decimal.NewFromFloat(120.50)
	evt := NewSaleCreated(uuid.New(), "S-1", total)

	assert.Equal(t, "S-1", evt.SaleNumber)
	assert.True(t, evt.TotalAmount.Equal(total))
}
