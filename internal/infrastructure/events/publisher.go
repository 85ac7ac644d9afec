// Package events implementa la notificación de eventos de la API: un
// notificador asíncrono con buffer acotado y publicadores intercambiables
// (RabbitMQ en despliegue, log en desarrollo y tests).
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/analytics-api/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher puerto de salida hacia el broker. El notificador lo invoca desde
// su goroutine de envío; un error se registra y se descarta (at-most-once).
type Publisher interface {
	// Publish envía el cuerpo JSON al topic indicado.
	Publish(ctx context.Context, topic string, body []byte) error
	// Close libera los recursos del publicador.
	Close() error
}

// ──────────────────────────────────────────────────────────────────────────────
// RabbitMQ
// ──────────────────────────────────────────────────────────────────────────────

// AMQPPublisher publica eventos en un exchange topic de RabbitMQ.
// El routing key es el nombre del stream (ej. "alert-events").
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPPublisher conecta al broker y declara el exchange (topic, durable).
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
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
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish envía el evento al exchange con el topic como routing key.
func (p *AMQPPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	return p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
}

// Close cierra canal y conexión.
func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Log (desarrollo)
// ──────────────────────────────────────────────────────────────────────────────

// LogPublisher escribe los eventos en el log en lugar de un broker.
// Se usa cuando AMQP_URL no está configurado.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador de log.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish registra el evento con nivel info.
func (p *LogPublisher) Publish(_ context.Context, topic string, body []byte) error {
	p.log.Info().
		Str("topic", topic).
		RawJSON("event", body).
		Msg("evento publicado (modo log)")
	return nil
}

// Close no hace nada.
func (p *LogPublisher) Close() error { return nil }
