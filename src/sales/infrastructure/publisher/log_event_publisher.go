package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"sales/src/sales/domain/event"
)

// LogEventPublisher publica los eventos en el log del servicio
// Implementación por defecto cuando no hay broker configurado
type LogEventPublisher struct{}

// NewLogEventPublisher crea una nueva instancia del publicador
func NewLogEventPublisher() *LogEventPublisher {
	return &LogEventPublisher{}
}

// Publish serializa el evento y lo escribe en el log
func (p *LogEventPublisher) Publish(ctx context.Context, evt event.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("error marshaling event %s: %w", evt.EventType(), err)
	}

	log.Printf("📣 Event published: %s %s", evt.EventType(), payload)
	return nil
}
