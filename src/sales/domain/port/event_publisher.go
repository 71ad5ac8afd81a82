package port

import (
	"context"
	"sales/src/sales/domain/event"
)

// EventPublisher contrato para publicar eventos de dominio
// Publicación fire-and-forget: se invoca después de persistir y el
// caller no consulta ninguna confirmación de entrega
type EventPublisher interface {
	Publish(ctx context.Context, evt event.Event) error
}
