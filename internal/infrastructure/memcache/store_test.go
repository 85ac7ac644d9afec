package memcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/infrastructure/memcache"
	"github.com/jhoicas/analytics-api/pkg/config"
)

func newStore(dashboardTTL int) *memcache.Store {
	return memcache.New(config.CacheConfig{
		DashboardMetricsTTL: dashboardTTL,
		ProductMetricsTTL:   600,
		SalesDataTTL:        180,
	})
}

func TestStore_PutGet(t *testing.T) {
	s := newStore(300)

	s.Put(ports.CacheDashboardMetrics, "k", "valor")
	v, ok := s.Get(ports.CacheDashboardMetrics, "k")

	require.True(t, ok)
	assert.Equal(t, "valor", v)
}

// Una entrada expirada se comporta como miss y fuerza el recálculo.
func TestStore_TTLExpira(t *testing.T) {
	s := newStore(1) // 1 segundo

	s.Put(ports.CacheDashboardMetrics, "k", 42)
	_, ok := s.Get(ports.CacheDashboardMetrics, "k")
	require.True(t, ok, "antes de expirar debe haber hit")

	time.Sleep(1100 * time.Millisecond)

	_, ok = s.Get(ports.CacheDashboardMetrics, "k")
	assert.False(t, ok, "después del TTL la entrada debe desaparecer")
}

// Los namespaces son independientes: la misma clave no colisiona entre ellos.
func TestStore_NamespacesAislados(t *testing.T) {
	s := newStore(300)

	s.Put(ports.CacheDashboardMetrics, "k", "dashboard")
	s.Put(ports.CacheProductMetrics, "k", "productos")

	v1, ok := s.Get(ports.CacheDashboardMetrics, "k")
	require.True(t, ok)
	v2, ok := s.Get(ports.CacheProductMetrics, "k")
	require.True(t, ok)

	assert.Equal(t, "dashboard", v1)
	assert.Equal(t, "productos", v2)
}

// EvictAll vacía solo el namespace indicado.
func TestStore_EvictAllPorNamespace(t *testing.T) {
	s := newStore(300)

	s.Put(ports.CacheAlerts, "unread", []string{"a"})
	s.Put(ports.CacheProductMetrics, "top-selling:limit=10", []string{"p"})

	s.EvictAll(ports.CacheAlerts)

	_, ok := s.Get(ports.CacheAlerts, "unread")
	assert.False(t, ok, "alerts debe quedar vacío")
	_, ok = s.Get(ports.CacheProductMetrics, "top-selling:limit=10")
	assert.True(t, ok, "los demás namespaces no se tocan")
}

// El namespace de alertas no expira por tiempo, solo por desalojo explícito.
func TestStore_AlertsSinTTL(t *testing.T) {
	s := newStore(1)

	s.Put(ports.CacheAlerts, "unread", "v")
	time.Sleep(1100 * time.Millisecond)

	_, ok := s.Get(ports.CacheAlerts, "unread")
	assert.True(t, ok, "alerts no lleva TTL")
}

// Un namespace desconocido nunca es error: Get es miss y Put/EvictAll son no-op.
func TestStore_NamespaceDesconocido(t *testing.T) {
	s := newStore(300)

	s.Put("nope", "k", "v")
	_, ok := s.Get("nope", "k")
	assert.False(t, ok)
	s.EvictAll("nope")
}
