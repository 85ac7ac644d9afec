package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/infrastructure/events"
	"github.com/jhoicas/analytics-api/pkg/logger"
)

// fakePublisher registra las publicaciones; opcionalmente falla o se bloquea.
type fakePublisher struct {
	mu        sync.Mutex
	published []published
	err       error
	gate      chan struct{} // si no es nil, Publish espera a que se cierre
}

type published struct {
	topic string
	body  []byte
}

func (p *fakePublisher) Publish(_ context.Context, topic string, body []byte) error {
	if p.gate != nil {
		<-p.gate
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, published{topic, body})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// El evento encolado llega al publicador con su topic y payload.
func TestNotifier_EntregaEventos(t *testing.T) {
	pub := &fakePublisher{}
	n := events.NewNotifier(pub, testLogger(), 16)

	n.NotifyAlertEvent(ports.EventAlertCreated, 7, map[string]any{"severity": "HIGH"})
	require.NoError(t, n.Close()) // Close drena la cola

	require.Equal(t, 1, pub.count())
	assert.Equal(t, events.TopicAlertEvents, pub.published[0].topic)
	assert.Contains(t, string(pub.published[0].body), `"eventType":"ALERT_CREATED"`)
	assert.Contains(t, string(pub.published[0].body), `"entityId":7`)
	assert.Contains(t, string(pub.published[0].body), `"source":"`+dto.EventSource+`"`)
}

// Un publicador que falla no propaga el error: el evento se pierde en silencio.
func TestNotifier_ErrorDePublicacionSeDescarta(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker caído")}
	n := events.NewNotifier(pub, testLogger(), 16)

	n.NotifyAlertEvent(ports.EventAlertRead, 1, nil)

	assert.NoError(t, n.Close(), "el fallo del broker nunca llega al caller")
	assert.Equal(t, 0, pub.count())
}

// Encolar sobre un notificador ya cerrado se descarta en silencio, sin panic,
// aunque el orden de apagado no haya respetado server-antes-que-notificador.
func TestNotifier_EncolarTrasCierreNoPanica(t *testing.T) {
	pub := &fakePublisher{}
	n := events.NewNotifier(pub, testLogger(), 4)
	require.NoError(t, n.Close())

	assert.NotPanics(t, func() {
		n.NotifyAlertEvent(ports.EventAlertCreated, 9, nil)
		n.NotifyAnalyticsEvent("METRICS_REFRESHED", nil)
	})
	assert.Equal(t, 0, pub.count(), "tras Close no debe publicarse nada")
}

// Con la cola llena, encolar nunca bloquea: los eventos extra se descartan.
func TestNotifier_ColaLlenaNoBloquea(t *testing.T) {
	gate := make(chan struct{})
	pub := &fakePublisher{gate: gate}
	n := events.NewNotifier(pub, testLogger(), 2)

	done := make(chan struct{})
	go func() {
		// 2 del buffer + 1 en vuelo del sender; el resto debe descartarse sin bloquear
		for i := int64(0); i < 50; i++ {
			n.NotifyAlertEvent(ports.EventAlertCreated, i, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("encolar con la cola llena no debe bloquear al caller")
	}

	close(gate)
	require.NoError(t, n.Close())
	// 1 en vuelo en el sender + 2 del buffer; los otros 47 se descartan
	assert.LessOrEqual(t, pub.count(), 3, "los eventos que no cupieron se descartan")
	assert.Greater(t, pub.count(), 0)
}
