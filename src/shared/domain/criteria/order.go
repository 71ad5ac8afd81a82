// Package criteria define el ordenamiento de los listados.
// Los controllers parsean el query param "order" contra la lista de campos
// permitidos de cada módulo y los repositorios lo traducen a SQL.
package criteria

import "strings"

// Direction dirección de ordenamiento
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Order un campo de ordenamiento con su dirección
type Order struct {
	Field     string
	Direction Direction
}

// DefaultOrder ordenamiento por defecto de los listados: más recientes primero
func DefaultOrder() []Order {
	return []Order{{Field: "created_at", Direction: DESC}}
}

// ParseOrders parsea un parámetro de ordenamiento tipo "price desc, title"
// Los campos fuera de la lista permitida se descartan; si no queda ninguno
// válido se retorna el ordenamiento por defecto
func ParseOrders(raw string, allowed []string) []Order {
	allowedMap := make(map[string]bool, len(allowed))
	for _, field := range allowed {
		allowedMap[field] = true
	}

	var orders []Order
	for _, part := range strings.Split(raw, ",") {
		tokens := strings.Fields(strings.ToLower(part))
		if len(tokens) == 0 {
			continue
		}

		field := tokens[0]
		if !allowedMap[field] {
			continue
		}

		direction := ASC
		if len(tokens) > 1 && tokens[1] == "desc" {
			direction = DESC
		}
		orders = append(orders, Order{Field: field, Direction: direction})
	}

	if len(orders) == 0 {
		return DefaultOrder()
	}
	return orders
}
