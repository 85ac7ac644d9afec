package ports

// Namespaces de caché. Cada namespace tiene su propia política de TTL;
// alerts no expira por tiempo, se desaloja explícitamente.
const (
	CacheDashboardMetrics = "dashboardMetrics"
	CacheProductMetrics   = "productMetrics"
	CacheSalesData        = "salesData"
	CacheAlerts           = "alerts"
)

// CacheStore puerto de caché read-through con particiones lógicas (namespaces).
// La caché es una optimización, nunca una dependencia de corrección: los use
// cases tratan cualquier fallo o ausencia como un miss y recalculan directo.
type CacheStore interface {
	// Get devuelve el valor y true si la clave existe y no ha expirado.
	Get(namespace, key string) (any, bool)

	// Put guarda el valor con el TTL configurado para el namespace.
	Put(namespace, key string, value any)

	// EvictAll vacía el namespace completo.
	EvictAll(namespace string)
}
