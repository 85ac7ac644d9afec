package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/pkg/logger"
)

// Streams de eventos por tipo de entidad.
const (
	TopicAlertEvents     = "alert-events"
	TopicOrderEvents     = "order-events"
	TopicProductEvents   = "product-events"
	TopicAnalyticsEvents = "analytics-events"
)

// publishTimeout límite por envío individual al broker.
const publishTimeout = 5 * time.Second

// outbound evento encolado pendiente de publicar.
type outbound struct {
	topic string
	msg   dto.EventMessage
}

// Notifier implementa ports.EventNotifier con cola acotada y una goroutine
// de envío. Encolar nunca bloquea: si la cola está llena el evento se
// descarta con un warning. Los errores de publicación se registran y se
// descartan; una escritura de dominio nunca falla por el broker.
type Notifier struct {
	pub   Publisher
	log   *logger.Logger
	queue chan outbound

	mu        sync.RWMutex // protege closed y el envío a queue frente a Close
	closed    bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

var _ ports.EventNotifier = (*Notifier)(nil)

// NewNotifier crea el notificador y arranca la goroutine de envío.
// buffer es el tamaño de la cola interna.
func NewNotifier(pub Publisher, log *logger.Logger, buffer int) *Notifier {
	if buffer < 1 {
		buffer = 1
	}
	n := &Notifier{
		pub:   pub,
		log:   log,
		queue: make(chan outbound, buffer),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// NotifyAlertEvent encola un evento de alerta (ALERT_CREATED, ALERT_READ).
func (n *Notifier) NotifyAlertEvent(eventType string, alertID int64, data map[string]any) {
	id := alertID
	n.enqueue(TopicAlertEvents, dto.NewEventMessage(eventType, dto.EventEntityAlert, &id, data))
}

// NotifyAnalyticsEvent encola un evento agregado sin entidad asociada.
func (n *Notifier) NotifyAnalyticsEvent(eventType string, data map[string]any) {
	n.enqueue(TopicAnalyticsEvents, dto.NewEventMessage(eventType, dto.EventEntityAnalytics, nil, data))
}

func (n *Notifier) enqueue(topic string, msg dto.EventMessage) {
	// RLock mantiene el canal abierto durante el envío: Close toma el
	// lock de escritura antes de cerrarlo.
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.log.Warn().
			Str("topic", topic).
			Str("event_type", msg.EventType).
			Msg("notificador cerrado, evento descartado")
		return
	}

	select {
	case n.queue <- outbound{topic: topic, msg: msg}:
	default:
		n.log.Warn().
			Str("topic", topic).
			Str("event_type", msg.EventType).
			Msg("cola de eventos llena, evento descartado")
	}
}

// run consume la cola hasta que se cierra, publicando cada evento.
func (n *Notifier) run() {
	defer n.wg.Done()
	for ev := range n.queue {
		n.publish(ev)
	}
}

func (n *Notifier) publish(ev outbound) {
	body, err := json.Marshal(ev.msg)
	if err != nil {
		n.log.Error().Err(err).
			Str("event_type", ev.msg.EventType).
			Msg("no se pudo serializar el evento")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := n.pub.Publish(ctx, ev.topic, body); err != nil {
		n.log.Error().Err(err).
			Str("topic", ev.topic).
			Str("event_type", ev.msg.EventType).
			Msg("error publicando evento")
		return
	}
	n.log.Debug().
		Str("topic", ev.topic).
		Str("event_type", ev.msg.EventType).
		Msg("evento publicado")
}

// Close deja de aceptar eventos, drena la cola y cierra el publicador.
// Encolar después de Close es un no-op con warning, no un panic.
func (n *Notifier) Close() error {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()
	})
	n.wg.Wait()
	return n.pub.Close()
}
