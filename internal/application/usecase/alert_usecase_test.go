package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes compartidos del paquete
// ──────────────────────────────────────────────────────────────────────────────

// fakeCache caché en memoria sin TTL para verificar read-through y desalojo.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]map[string]any
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]map[string]any)}
}

func (c *fakeCache) Get(namespace, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[namespace][key]
	return v, ok
}

func (c *fakeCache) Put(namespace, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[namespace] == nil {
		c.entries[namespace] = make(map[string]any)
	}
	c.entries[namespace][key] = value
}

func (c *fakeCache) EvictAll(namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, namespace)
}

func (c *fakeCache) size(namespace string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries[namespace])
}

// fakeNotifier registra los eventos emitidos.
type notifiedEvent struct {
	eventType string
	alertID   int64
	data      map[string]any
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
}

func (n *fakeNotifier) NotifyAlertEvent(eventType string, alertID int64, data map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{eventType, alertID, data})
}

func (n *fakeNotifier) byType(eventType string) []notifiedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notifiedEvent
	for _, e := range n.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// fakeAlertStore repositorio de alertas en memoria.
type fakeAlertStore struct {
	mu     sync.Mutex
	nextID int64
	alerts map[int64]*entity.Alert
}

func newFakeAlertStore(seed ...entity.Alert) *fakeAlertStore {
	s := &fakeAlertStore{nextID: 1, alerts: make(map[int64]*entity.Alert)}
	for _, a := range seed {
		copied := a
		copied.ID = s.nextID
		s.alerts[s.nextID] = &copied
		s.nextID++
	}
	return s
}

func (s *fakeAlertStore) Create(_ context.Context, alert *entity.Alert) (*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *alert
	created.ID = s.nextID
	created.IsRead = false
	created.CreatedAt = time.Now()
	s.alerts[s.nextID] = &created
	s.nextID++
	out := created
	return &out, nil
}

func (s *fakeAlertStore) GetByID(_ context.Context, id int64) (*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (s *fakeAlertStore) ListAll(_ context.Context, limit, offset int) ([]entity.Alert, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []entity.Alert
	for _, a := range s.alerts {
		all = append(all, *a)
	}
	return all, int64(len(all)), nil
}

func (s *fakeAlertStore) ListUnread(_ context.Context) ([]entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Alert
	for _, a := range s.alerts {
		if !a.IsRead {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAlertStore) ListBySeverity(_ context.Context, severity string) ([]entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Alert
	for _, a := range s.alerts {
		if a.Severity == severity {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAlertStore) ListByType(_ context.Context, alertType string) ([]entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Alert
	for _, a := range s.alerts {
		if a.Type == alertType {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAlertStore) CountUnread(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.alerts {
		if !a.IsRead {
			n++
		}
	}
	return n, nil
}

func (s *fakeAlertStore) MarkRead(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.IsRead = true
	return nil
}

func unreadAlert(title string) entity.Alert {
	return entity.Alert{
		Type:     entity.AlertTypeInventory,
		Title:    title,
		Message:  "stock bajo",
		Severity: entity.AlertSeverityHigh,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkAsRead
// ──────────────────────────────────────────────────────────────────────────────

// Marcar una alerta no leída: transición + evento + desalojo de caché.
func TestMarkAsRead_TransicionaYEmiteEvento(t *testing.T) {
	store := newFakeAlertStore(unreadAlert("A"))
	cache := newFakeCache()
	notifier := &fakeNotifier{}
	uc := usecase.NewAlertUseCase(store, cache, notifier)

	// Calentar la caché de no leídas
	_, err := uc.ListUnread(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, cache.size(ports.CacheAlerts))

	out, err := uc.MarkAsRead(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, out.IsRead)
	assert.Equal(t, 0, cache.size(ports.CacheAlerts), "la escritura debe desalojar el namespace de alertas")

	read := notifier.byType(ports.EventAlertRead)
	require.Len(t, read, 1, "debe emitirse exactamente un ALERT_READ")
	assert.Equal(t, int64(1), read[0].alertID)
	assert.Equal(t, entity.AlertTypeInventory, read[0].data["alertType"])
}

// Idempotencia: marcar dos veces la misma alerta no duplica el evento.
func TestMarkAsRead_Idempotente(t *testing.T) {
	store := newFakeAlertStore(unreadAlert("A"))
	notifier := &fakeNotifier{}
	uc := usecase.NewAlertUseCase(store, newFakeCache(), notifier)

	first, err := uc.MarkAsRead(context.Background(), 1)
	require.NoError(t, err)
	second, err := uc.MarkAsRead(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, first.IsRead)
	assert.True(t, second.IsRead, "la segunda llamada devuelve la alerta ya leída, sin error")
	assert.Len(t, notifier.byType(ports.EventAlertRead), 1,
		"la segunda llamada no debe emitir otro ALERT_READ")
}

func TestMarkAsRead_NoExiste(t *testing.T) {
	uc := usecase.NewAlertUseCase(newFakeAlertStore(), nil, nil)
	_, err := uc.MarkAsRead(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EmiteAlertCreated(t *testing.T) {
	store := newFakeAlertStore()
	notifier := &fakeNotifier{}
	cache := newFakeCache()
	uc := usecase.NewAlertUseCase(store, cache, notifier)

	// Calentar caché para verificar el desalojo
	_, err := uc.ListUnread(context.Background())
	require.NoError(t, err)

	out, err := uc.Create(context.Background(), dto.CreateAlertRequest{
		Type:     entity.AlertTypeSales,
		Title:    "Pico de ventas",
		Message:  "ventas por encima del promedio",
		Severity: entity.AlertSeverityLow,
	})
	require.NoError(t, err)

	assert.False(t, out.IsRead, "toda alerta nace no leída")
	assert.Equal(t, 0, cache.size(ports.CacheAlerts))

	created := notifier.byType(ports.EventAlertCreated)
	require.Len(t, created, 1)
	assert.Equal(t, out.ID, created[0].alertID)
	assert.Equal(t, entity.AlertSeverityLow, created[0].data["severity"])
}

func TestCreate_ValidaTipoYSeveridad(t *testing.T) {
	uc := usecase.NewAlertUseCase(newFakeAlertStore(), nil, nil)

	cases := []dto.CreateAlertRequest{
		{Type: "NOPE", Title: "t", Message: "m", Severity: entity.AlertSeverityLow},
		{Type: entity.AlertTypeSales, Title: "t", Message: "m", Severity: "EXTREME"},
		{Type: entity.AlertTypeSales, Title: "", Message: "m", Severity: entity.AlertSeverityLow},
		{Type: entity.AlertTypeSales, Title: "t", Message: "", Severity: entity.AlertSeverityLow},
	}
	for i, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d debe rechazarse", i)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conteo y listados
// ──────────────────────────────────────────────────────────────────────────────

// El conteo de no leídas coincide con la longitud del listado de no leídas.
func TestCountUnread_CoincideConListado(t *testing.T) {
	store := newFakeAlertStore(unreadAlert("A"), unreadAlert("B"), unreadAlert("C"))
	uc := usecase.NewAlertUseCase(store, nil, nil)

	require.NoError(t, store.MarkRead(context.Background(), 2))

	list, err := uc.ListUnread(context.Background())
	require.NoError(t, err)
	count, err := uc.CountUnread(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(len(list)), count, "conteo y listado de no leídas deben coincidir")
}

func TestListBySeverity_SeveridadDesconocida(t *testing.T) {
	uc := usecase.NewAlertUseCase(newFakeAlertStore(), nil, nil)
	_, err := uc.ListBySeverity(context.Background(), "EXTREME")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByType_TipoDesconocido(t *testing.T) {
	uc := usecase.NewAlertUseCase(newFakeAlertStore(), nil, nil)
	_, err := uc.ListByType(context.Background(), "WEATHER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
