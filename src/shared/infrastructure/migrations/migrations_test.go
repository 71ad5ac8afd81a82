package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findStatement(t *testing.T, table string) string {
	t.Helper()
	for _, stmt := range schema {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			return stmt
		}
	}
	require.Failf(t, "missing statement", "no CREATE TABLE for %s", table)
	return ""
}

// El dominio maneja customer_id y branch_id como texto opaco
// ("customer-1", códigos externos); el esquema debe aceptarlos
func TestSchema_ExternalIDsAreText(t *testing.T) {
	sales := findStatement(t, "sales")

	assert.Contains(t, sales, "customer_id VARCHAR(100) NOT NULL")
	assert.Contains(t, sales, "branch_id VARCHAR(100) NOT NULL")
	assert.NotContains(t, sales, "customer_id UUID")
	assert.NotContains(t, sales, "branch_id UUID")
}

func TestSchema_SaleItemsCascadeOnSaleDelete(t *testing.T) {
	items := findStatement(t, "sale_items")

	assert.Contains(t, items, "REFERENCES sales(id) ON DELETE CASCADE")
	assert.Contains(t, items, "position INTEGER")
}
