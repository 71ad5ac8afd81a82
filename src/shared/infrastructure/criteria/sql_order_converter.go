package criteria

import (
	"strings"

	domainCriteria "sales/src/shared/domain/criteria"
)

// SQLOrderConverter convierte el ordenamiento de un listado en una cláusula SQL
// Los campos ya vienen validados contra la lista permitida del módulo
type SQLOrderConverter struct{}

// NewSQLOrderConverter crea una nueva instancia del conversor
func NewSQLOrderConverter() *SQLOrderConverter {
	return &SQLOrderConverter{}
}

// OrderByClause construye la cláusula ORDER BY para los ordenamientos dados
func (s *SQLOrderConverter) OrderByClause(orders []domainCriteria.Order) string {
	if len(orders) == 0 {
		orders = domainCriteria.DefaultOrder()
	}

	parts := make([]string, 0, len(orders))
	for _, order := range orders {
		parts = append(parts, order.Field+" "+string(order.Direction))
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}
