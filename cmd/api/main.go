package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/analytics-api/internal/application/analytics"
	"github.com/jhoicas/analytics-api/internal/application/auth"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/infrastructure/events"
	"github.com/jhoicas/analytics-api/internal/infrastructure/memcache"
	"github.com/jhoicas/analytics-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/analytics-api/internal/interfaces/http"
	"github.com/jhoicas/analytics-api/pkg/config"
	"github.com/jhoicas/analytics-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	metricRepo := postgres.NewSalesMetricRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	cache := memcache.New(cfg.Cache)

	// Publicador de eventos: RabbitMQ si hay broker configurado, log si no.
	var publisher events.Publisher
	var consumer *events.Consumer
	if cfg.AMQP.URL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		publisher = amqpPub
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("eventos hacia RabbitMQ")

		// Consumidor de auditoría: registra en el log todo lo publicado.
		consumer, err = events.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("consumidor de eventos")
		}
	} else {
		publisher = events.NewLogPublisher(log)
		log.Info().Msg("AMQP_URL no configurado, eventos en modo log")
	}
	notifier := events.NewNotifier(publisher, log, cfg.AMQP.QueueBuffer)

	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo, customerRepo, alertRepo, metricRepo, cache)
	productUC := usecase.NewProductUseCase(productRepo, cache)
	alertUC := usecase.NewAlertUseCase(alertRepo, cache, notifier)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if h := swaggerMiddleware(swaggerSpecPath, "Analytics API", log); h != nil {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ProductUC:   productUC,
		AlertUC:     alertUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Drenar la cola de eventos pendientes antes de salir.
	if err := notifier.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del notificador de eventos")
	}
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("cierre del consumidor de eventos")
		}
	}

	log.Info().Msg("aplicación detenida")
}
