package request

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *CreateSaleRequest {
	return &CreateSaleRequest{
		SaleNumber:   "SALE-001",
		CustomerID:   "customer-1",
		CustomerName: "Juan Pérez",
		BranchID:     "branch-1",
		BranchName:   "Sucursal Centro",
		Items: []SaleItemRequest{
			{ProductID: uuid.New(), ProductName: "Teclado", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

func TestCreateSaleRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate().ErrOrNil())
}

func TestCreateSaleRequest_BlankSaleNumberIsValid(t *testing.T) {
	req := validCreateRequest()
	req.SaleNumber = ""
	assert.NoError(t, req.Validate().ErrOrNil())
}

func TestCreateSaleRequest_CollectsAllViolations(t *testing.T) {
	req := &CreateSaleRequest{}
	v := req.Validate()

	require.True(t, v.HasViolations())

	fields := make(map[string]bool)
	for _, violation := range v.Violations {
		fields[violation.Field] = true
	}
	// Todas las violaciones se reportan juntas, no solo la primera
	assert.True(t, fields["customer_id"])
	assert.True(t, fields["customer_name"])
	assert.True(t, fields["branch_id"])
	assert.True(t, fields["branch_name"])
	assert.True(t, fields["items"])
}

func TestCreateSaleRequest_SaleNumberTooLong(t *testing.T) {
	req := validCreateRequest()
	req.SaleNumber = strings.Repeat("X", 51)

	v := req.Validate()
	require.True(t, v.HasViolations())
	assert.Equal(t, "sale_number", v.Violations[0].Field)
}

func TestCreateSaleRequest_FutureDateRejected(t *testing.T) {
	req := validCreateRequest()
	req.Date = time.Now().UTC().Add(24 * time.Hour)

	v := req.Validate()
	require.True(t, v.HasViolations())
	assert.Equal(t, "date", v.Violations[0].Field)
}

func TestCreateSaleRequest_DuplicateProducts(t *testing.T) {
	productID := uuid.New()
	req := validCreateRequest()
	req.Items = []SaleItemRequest{
		{ProductID: productID, ProductName: "Teclado", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		{ProductID: productID, ProductName: "Teclado", Quantity: 3, UnitPrice: decimal.NewFromInt(50)},
	}

	v := req.Validate()
	require.True(t, v.HasViolations())
	assert.Contains(t, v.Violations[0].Message, "duplicate product")
}

func TestCreateSaleRequest_ItemRules(t *testing.T) {
	req := validCreateRequest()
	req.Items = []SaleItemRequest{
		{ProductID: uuid.Nil, ProductName: "", Quantity: 0, UnitPrice: decimal.Zero},
		{ProductID: uuid.New(), ProductName: "Mouse", Quantity: 21, UnitPrice: decimal.NewFromInt(10)},
	}

	v := req.Validate()
	require.True(t, v.HasViolations())

	fields := make(map[string]string)
	for _, violation := range v.Violations {
		fields[violation.Field] = violation.Message
	}
	assert.Contains(t, fields, "items[0].product_id")
	assert.Contains(t, fields, "items[0].product_name")
	assert.Contains(t, fields, "items[0].quantity")
	assert.Contains(t, fields, "items[0].unit_price")
	assert.Equal(t, "cannot sell more than 20 identical items", fields["items[1].quantity"])
}

func TestUpdateSaleRequest_Valid(t *testing.T) {
	req := &UpdateSaleRequest{
		CustomerID:   "customer-1",
		CustomerName: "Juan Pérez",
		Items: []SaleItemRequest{
			{ProductID: uuid.New(), ProductName: "Teclado", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}
	assert.NoError(t, req.Validate().ErrOrNil())
}

func TestUpdateSaleRequest_EmptyItemsRejected(t *testing.T) {
	req := &UpdateSaleRequest{
		CustomerID:   "customer-1",
		CustomerName: "Juan Pérez",
	}

	v := req.Validate()
	require.True(t, v.HasViolations())
	assert.Equal(t, "items", v.Violations[0].Field)
}
