// Package memcache implementa el puerto de caché con go-cache: una instancia
// por namespace, cada una con el TTL por defecto de su política.
package memcache

import (
	"time"

	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/pkg/config"
	gocache "github.com/patrickmn/go-cache"
)

var _ ports.CacheStore = (*Store)(nil)

// Store caché en memoria particionada por namespace.
// go-cache es seguro para uso concurrente; las lecturas sin sincronización
// adicional son parte del contrato (los misses concurrentes recalculan).
type Store struct {
	namespaces map[string]*gocache.Cache
}

const cleanupInterval = time.Minute

// New construye el Store con los TTL configurados. El namespace de alertas no
// expira por tiempo: se desaloja explícitamente en las escrituras de alertas.
func New(cfg config.CacheConfig) *Store {
	ttl := func(seconds int) time.Duration { return time.Duration(seconds) * time.Second }
	return &Store{
		namespaces: map[string]*gocache.Cache{
			ports.CacheDashboardMetrics: gocache.New(ttl(cfg.DashboardMetricsTTL), cleanupInterval),
			ports.CacheProductMetrics:   gocache.New(ttl(cfg.ProductMetricsTTL), cleanupInterval),
			ports.CacheSalesData:        gocache.New(ttl(cfg.SalesDataTTL), cleanupInterval),
			ports.CacheAlerts:           gocache.New(gocache.NoExpiration, cleanupInterval),
		},
	}
}

// Get devuelve el valor si la clave existe y no ha expirado.
// Un namespace desconocido se comporta como miss: la caché nunca es
// requisito de corrección.
func (s *Store) Get(namespace, key string) (any, bool) {
	c, ok := s.namespaces[namespace]
	if !ok {
		return nil, false
	}
	return c.Get(key)
}

// Put guarda el valor con el TTL por defecto del namespace.
func (s *Store) Put(namespace, key string, value any) {
	if c, ok := s.namespaces[namespace]; ok {
		c.SetDefault(key, value)
	}
}

// EvictAll vacía el namespace completo.
func (s *Store) EvictAll(namespace string) {
	if c, ok := s.namespaces[namespace]; ok {
		c.Flush()
	}
}
