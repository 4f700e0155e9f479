package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/handlers"
	"marketplace/internal/middleware"
	"marketplace/internal/models"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
	"marketplace/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Storage ---
	repos, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer repos.Close()

	// --- Initialize RabbitMQ Client ---
	// Publishing is optional; without RABBITMQ_URL change events are skipped.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
			Queue:    cfg.RabbitMQQueue,
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL is not set. Change events will not be published.")
	}

	app := newApp(repos, publisher, cfg)

	// --- Start RabbitMQ Consumer ---
	if mqClient != nil && cfg.RabbitMQConsume {
		logEvent := func(msg amqp.Delivery) error {
			log.Printf("Received %s event (id %s): %s", msg.RoutingKey, msg.MessageId, string(msg.Body))
			return nil
		}
		if err := mqClient.ConsumeEvents(logEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on port %s", cfg.AppPort)
		return app.Listen(cfg.AppPort)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped with error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// store bundles the repositories for the three resource types.
type store struct {
	users   repositories.Repository[models.User]
	orders  repositories.Repository[models.Order]
	offers  repositories.Repository[models.Offer]
	closers []func()
}

// Close releases the database and cache connections.
func (s *store) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStore builds repositories for the configured driver, wrapped with the
// Redis cache when REDIS_URL is set.
func openStore(cfg *config.Config) (*store, error) {
	s := &store{}

	if cfg.DatabaseDriver == database.DriverMemory {
		s.users = repositories.NewMemoryRepository[models.User]()
		s.orders = repositories.NewMemoryRepository[models.Order]()
		s.offers = repositories.NewMemoryRepository[models.Offer]()
	} else {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() {
			if err := database.Close(db); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		})
		if err := database.Migrate(db); err != nil {
			s.Close()
			return nil, err
		}
		s.users = repositories.NewGORMRepository[models.User](db)
		s.orders = repositories.NewGORMRepository[models.Order](db)
		s.offers = repositories.NewGORMRepository[models.Offer](db)
	}
	log.Printf("Using %s storage", cfg.DatabaseDriver)

	if cfg.RedisURL == "" {
		return s, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		s.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.closers = append(s.closers, func() { client.Close() })

	s.users = repositories.NewCachedRepository(s.users, client, cfg.CachePrefix, cfg.CacheTTL)
	s.orders = repositories.NewCachedRepository(s.orders, client, cfg.CachePrefix, cfg.CacheTTL)
	s.offers = repositories.NewCachedRepository(s.offers, client, cfg.CachePrefix, cfg.CacheTTL)
	log.Printf("Record cache enabled with TTL %s", cfg.CacheTTL)
	return s, nil
}

// newApp wires services and handlers into a Fiber app.
func newApp(s *store, publisher services.EventPublisher, cfg *config.Config) *fiber.App {
	// --- Initialize Services ---
	users := services.NewResourceManager(s.users, services.WithPublisher[models.User](publisher))

	orderOpts := []services.Option[models.Order]{services.WithPublisher[models.Order](publisher)}
	if cfg.StrictReferences {
		orderOpts = append(orderOpts, services.WithReferenceCheck(services.OrderReferences(users)))
	}
	orders := services.NewResourceManager(s.orders, orderOpts...)

	offerOpts := []services.Option[models.Offer]{services.WithPublisher[models.Offer](publisher)}
	if cfg.StrictReferences {
		offerOpts = append(offerOpts, services.WithReferenceCheck(services.OfferReferences(orders, users)))
	}
	offers := services.NewResourceManager(s.offers, offerOpts...)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	handlers.NewHealthHandler(cfg.DatabaseDriver).RegisterRoutes(app)
	handlers.NewUserHandler(users).RegisterRoutes(app)
	handlers.NewOrderHandler(orders).RegisterRoutes(app)
	handlers.NewOfferHandler(offers).RegisterRoutes(app)

	return app
}
