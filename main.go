package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"handiva/internal/config"
	"handiva/internal/handlers"
	"handiva/internal/logging"
	"handiva/internal/middleware"
	"handiva/internal/services"
	"handiva/internal/storage"
	"handiva/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	flush, err := logging.Install(logging.Options{Mode: cfg.LogMode, Filename: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	defer flush()

	// --- Store ---
	// The service has no way to recover a store it never reached.
	store, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zap.L().Fatal("failed to open store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			zap.L().Warn("error closing store", zap.Error(err))
		}
	}()

	if cfg.SeedDemo {
		seeded, err := services.NewSeeder(store.Users, store.Products).SeedDemo(context.Background(), cfg.SeedPassword)
		if err != nil {
			zap.L().Fatal("failed to seed demo catalog", zap.Error(err))
		}
		zap.L().Info("demo catalog", zap.Bool("seeded", seeded))
	}

	// --- Events ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.EventsQueue})
		if err != nil {
			zap.L().Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.Consume(logLiaisonEvent); err != nil {
			zap.L().Error("failed to start event consumer", zap.Error(err))
		}
	} else {
		zap.L().Info("RABBITMQ_URL not set, catalog events disabled")
	}

	app := newApp(cfg, store, events)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zap.L().Info("starting server", zap.String("addr", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			zap.L().Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zap.L().Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zap.L().Warn("error during Fiber shutdown", zap.Error(err))
	}
	zap.L().Info("server gracefully stopped")
}

// newApp wires services and handlers over store into a Fiber app.
// events may be nil.
func newApp(cfg config.Config, store *storage.Storage, events services.EventPublisher) *fiber.App {
	productHandler := handlers.NewProductHandler(services.NewProductService(store.Products, events))
	contactHandler := handlers.NewContactHandler(services.NewContactService(store.Contacts, events))
	metaHandler := handlers.NewMetaHandler(store)

	app := fiber.New(fiber.Config{
		AppName:      "handiva",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	api := app.Group("/api")
	metaHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	app.Get("/health", metaHandler.HandleHealth)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.StaticDir)
	}
	return app
}

// logLiaisonEvent stands in for the liaison team's inbox: contact
// submissions are logged, other events acknowledged.
func logLiaisonEvent(ev rabbitmq.Event) error {
	if ev.Type == services.EventContactSubmitted {
		zap.L().Info("new tribal contact message", zap.ByteString("payload", ev.Payload))
	}
	return nil
}
