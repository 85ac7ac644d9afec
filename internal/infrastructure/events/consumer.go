package events

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer escucha todos los streams del exchange y registra cada evento.
// Sirve de auditoría ligera; no altera estado de la aplicación.
type Consumer struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *logger.Logger
}

// NewConsumer conecta al broker y enlaza una cola efímera al exchange.
func NewConsumer(url, exchange string, log *logger.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "#", exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	c := &Consumer{conn: conn, ch: ch, log: log}
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("consume: %w", err)
	}
	go c.loop(deliveries)
	return c, nil
}

func (c *Consumer) loop(deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		var msg dto.EventMessage
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			c.log.Warn().Err(err).Str("routing_key", d.RoutingKey).Msg("evento recibido con formato inválido")
			continue
		}
		ev := c.log.Info().
			Str("topic", d.RoutingKey).
			Str("event_type", msg.EventType).
			Str("entity_type", msg.EntityType)
		if msg.EntityID != nil {
			ev = ev.Int64("entity_id", *msg.EntityID)
		}
		ev.Msg("evento recibido")
	}
}

// Close cierra canal y conexión del consumidor.
func (c *Consumer) Close() error {
	if err := c.ch.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
