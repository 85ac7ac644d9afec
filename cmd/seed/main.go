// seed crea el esquema y carga datos de demostración para desarrollo local:
// clientes, productos, órdenes con sus líneas, alertas y rollups diarios.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/infrastructure/postgres"
	"github.com/jhoicas/analytics-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id                BIGSERIAL PRIMARY KEY,
	first_name        TEXT NOT NULL,
	last_name         TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	total_spent       NUMERIC(12,2) NOT NULL DEFAULT 0,
	order_count       INT NOT NULL DEFAULT 0,
	registration_date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	sku          TEXT NOT NULL UNIQUE,
	price        NUMERIC(12,2) NOT NULL,
	cost_price   NUMERIC(12,2) NOT NULL DEFAULT 0,
	inventory    INT NOT NULL DEFAULT 0,
	category_id  BIGINT,
	vendor_id    BIGINT,
	rating       NUMERIC(3,2) NOT NULL DEFAULT 0,
	review_count INT NOT NULL DEFAULT 0,
	is_active    BOOLEAN NOT NULL DEFAULT true,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id             BIGSERIAL PRIMARY KEY,
	customer_id    BIGINT NOT NULL REFERENCES customers(id),
	total_amount   NUMERIC(12,2) NOT NULL,
	status         TEXT NOT NULL DEFAULT 'PENDING',
	order_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
	shipped_date   TIMESTAMPTZ,
	delivered_date TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS order_items (
	id         BIGSERIAL PRIMARY KEY,
	order_id   BIGINT NOT NULL REFERENCES orders(id),
	product_id BIGINT NOT NULL REFERENCES products(id),
	quantity   INT NOT NULL,
	unit_price NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS alerts (
	id         BIGSERIAL PRIMARY KEY,
	type       TEXT NOT NULL,
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	severity   TEXT NOT NULL,
	is_read    BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	metadata   JSONB
);

CREATE TABLE IF NOT EXISTS sales_metrics (
	id                  BIGSERIAL PRIMARY KEY,
	date                DATE NOT NULL UNIQUE,
	total_sales         NUMERIC(12,2) NOT NULL DEFAULT 0,
	total_orders        INT NOT NULL DEFAULT 0,
	average_order_value NUMERIC(12,2) NOT NULL DEFAULT 0,
	return_rate         NUMERIC(5,2) NOT NULL DEFAULT 0,
	new_customers       INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema creado")

	var existing int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&existing); err != nil {
		fail("verificar datos: %v", err)
	}
	if existing > 0 {
		fmt.Println("ya hay datos, no se insertan duplicados")
		return
	}

	if err := seedDemoData(ctx, pool); err != nil {
		fail("insertar datos demo: %v", err)
	}
	fmt.Println("datos demo insertados")
}

func seedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()

	// Clientes
	customers := [][]any{
		{"Laura", "Gómez", "laura.gomez@example.com", "1250.50", 8, now.AddDate(0, -6, 0)},
		{"Carlos", "Pérez", "carlos.perez@example.com", "430.00", 3, now.AddDate(0, -2, 0)},
		{"Ana", "Martínez", "ana.martinez@example.com", "89.99", 1, now.AddDate(0, 0, -10)},
		{"Jorge", "Ramírez", "jorge.ramirez@example.com", "2210.75", 15, now.AddDate(-1, 0, 0)},
	}
	customerIDs := make([]int64, 0, len(customers))
	for _, c := range customers {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO customers (first_name, last_name, email, total_spent, order_count, registration_date)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`, c...).Scan(&id)
		if err != nil {
			return fmt.Errorf("cliente %v: %w", c[2], err)
		}
		customerIDs = append(customerIDs, id)
	}

	// Productos
	products := [][]any{
		{"Auriculares inalámbricos", "SKU-001", "59.99", "32.00", 120, "4.50", 230, true},
		{"Teclado mecánico", "SKU-002", "89.90", "48.00", 45, "4.70", 180, true},
		{"Mouse ergonómico", "SKU-003", "34.50", "15.00", 8, "4.20", 95, true},
		{"Monitor 27\"", "SKU-004", "249.00", "170.00", 3, "4.80", 310, true},
		{"Webcam HD", "SKU-005", "49.00", "22.00", 60, "3.90", 42, true},
		{"Hub USB-C (descontinuado)", "SKU-006", "25.00", "10.00", 0, "3.50", 12, false},
	}
	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO products (name, sku, price, cost_price, inventory, rating, review_count, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`, p...).Scan(&id)
		if err != nil {
			return fmt.Errorf("producto %v: %w", p[1], err)
		}
		productIDs = append(productIDs, id)
	}

	// Órdenes del mes en curso con sus líneas
	type item struct {
		product  int
		quantity int
		price    string
	}
	orders := []struct {
		customer int
		total    string
		status   string
		daysAgo  int
		items    []item
	}{
		{0, "149.89", "DELIVERED", 6, []item{{0, 1, "59.99"}, {2, 1, "34.50"}, {4, 1, "49.00"}}},
		{1, "89.90", "SHIPPED", 3, []item{{1, 1, "89.90"}}},
		{3, "547.99", "PENDING", 1, []item{{3, 2, "249.00"}, {4, 1, "49.00"}}},
	}
	for _, o := range orders {
		var orderID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO orders (customer_id, total_amount, status, order_date)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			customerIDs[o.customer], o.total, o.status, now.AddDate(0, 0, -o.daysAgo),
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("orden: %w", err)
		}
		for _, it := range o.items {
			_, err := pool.Exec(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4)`,
				orderID, productIDs[it.product], it.quantity, it.price,
			)
			if err != nil {
				return fmt.Errorf("línea de orden: %w", err)
			}
		}
	}

	// Alertas
	alerts := [][]any{
		{"INVENTORY", "Stock bajo: Monitor 27\"", "Quedan 3 unidades en inventario", "HIGH", false},
		{"INVENTORY", "Stock bajo: Mouse ergonómico", "Quedan 8 unidades en inventario", "MEDIUM", false},
		{"SALES", "Pico de ventas", "Las ventas de hoy superan el promedio diario", "LOW", true},
		{"SYSTEM", "Rollup nocturno completado", "sales_metrics actualizado", "LOW", true},
	}
	for _, a := range alerts {
		_, err := pool.Exec(ctx, `
			INSERT INTO alerts (type, title, message, severity, is_read)
			VALUES ($1, $2, $3, $4, $5)`, a...)
		if err != nil {
			return fmt.Errorf("alerta %v: %w", a[1], err)
		}
	}

	// Rollups diarios de los últimos 7 días
	for d := 7; d >= 1; d-- {
		day := now.AddDate(0, 0, -d).Truncate(24 * time.Hour)
		_, err := pool.Exec(ctx, `
			INSERT INTO sales_metrics (date, total_sales, total_orders, average_order_value, return_rate, new_customers)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (date) DO NOTHING`,
			day, fmt.Sprintf("%d.00", 300+d*40), 3+d, fmt.Sprintf("%d.00", 90+d*5), "2.50", d%3,
		)
		if err != nil {
			return fmt.Errorf("rollup %s: %w", day.Format("2006-01-02"), err)
		}
	}

	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
