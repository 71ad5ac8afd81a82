package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sales/src/sales/domain/event"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// eventEnvelope formato de publicación compartido con los consumidores
type eventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NATSEventPublisher publica los eventos de dominio en NATS
// El subject es el tipo del evento (sales.sale.created, etc.)
type NATSEventPublisher struct {
	conn *nats.Conn
}

// NewNATSEventPublisher crea una nueva instancia del publicador
func NewNATSEventPublisher(conn *nats.Conn) *NATSEventPublisher {
	return &NATSEventPublisher{conn: conn}
}

// Publish arma el envelope y lo publica en el subject del evento
// Entrega at-most-once: no se espera confirmación del broker
func (p *NATSEventPublisher) Publish(ctx context.Context, evt event.Event) error {
	data, err := buildEnvelope(evt)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(evt.EventType(), data); err != nil {
		return fmt.Errorf("error publishing event %s: %w", evt.EventType(), err)
	}

	return nil
}

// buildEnvelope serializa el evento dentro de su envelope JSON
func buildEnvelope(evt event.Event) ([]byte, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("error marshaling event %s: %w", evt.EventType(), err)
	}

	envelope := eventEnvelope{
		EventID:    uuid.New().String(),
		EventType:  evt.EventType(),
		OccurredAt: evt.OccurredAt(),
		Payload:    payload,
	}

	return json.Marshal(envelope)
}
