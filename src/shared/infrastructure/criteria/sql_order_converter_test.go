package criteria

import (
	"testing"

	domainCriteria "sales/src/shared/domain/criteria"

	"github.com/stretchr/testify/assert"
)

func TestOrderByClause(t *testing.T) {
	converter := NewSQLOrderConverter()

	clause := converter.OrderByClause([]domainCriteria.Order{
		{Field: "date", Direction: domainCriteria.DESC},
		{Field: "sale_number", Direction: domainCriteria.ASC},
	})
	assert.Equal(t, "ORDER BY date DESC, sale_number ASC", clause)
}

func TestOrderByClause_DefaultWhenEmpty(t *testing.T) {
	converter := NewSQLOrderConverter()
	assert.Equal(t, "ORDER BY created_at DESC", converter.OrderByClause(nil))
}
