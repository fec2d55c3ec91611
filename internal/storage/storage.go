// Package storage opens the catalog store selected by a connection string
// and exposes its repositories.
//
// Supported schemes:
//
//	mongodb:// mongodb+srv://   MongoDB, database named by the URL path
//	postgres:// postgresql://   PostgreSQL through GORM
//	sqlite://<dsn>              SQLite through GORM
//	memory://                   in-process maps
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"handiva/internal/models"
	"handiva/internal/repositories"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultMongoDatabase is used when a Mongo URL names no database.
const DefaultMongoDatabase = "handiva"

// Storage is an opened store. It is acquired once at startup and released
// with Close.
type Storage struct {
	Backend  string
	Products repositories.ProductRepository
	Contacts repositories.ContactRepository
	Users    repositories.UserRepository
	Orders   repositories.OrderRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the store named by dsn, prepares its schema or indexes
// and verifies it answers a ping.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return nil, fmt.Errorf("storage: connection string %q has no scheme", redact(dsn))
	}

	var (
		s   *Storage
		err error
	)
	switch scheme {
	case "memory":
		s = openMemory()
	case "sqlite":
		s, err = openGORM("sqlite", sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")))
	case "postgres", "postgresql":
		s, err = openGORM("postgres", postgres.Open(dsn))
	case "mongodb", "mongodb+srv":
		s, err = openMongo(ctx, dsn)
	default:
		return nil, fmt.Errorf("storage: unsupported scheme %q", scheme)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Ping(ctx); err != nil {
		_ = s.Close(context.Background())
		return nil, fmt.Errorf("storage: %s ping failed: %w", s.Backend, err)
	}
	zap.L().Info("store connected", zap.String("backend", s.Backend), zap.String("dsn", redact(dsn)))
	return s, nil
}

// Ping reports whether the store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the store connection.
func (s *Storage) Close(ctx context.Context) error {
	return s.close(ctx)
}

func openMemory() *Storage {
	store := repositories.NewMemoryStore()
	noop := func(context.Context) error { return nil }
	return &Storage{
		Backend:  "memory",
		Products: store.Products(),
		Contacts: store.Contacts(),
		Users:    store.Users(),
		Orders:   store.Orders(),
		ping:     noop,
		close:    noop,
	}
}

func openGORM(backend string, dialector gorm.Dialector) (*Storage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open %s: %w", backend, err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.ContactMessage{}); err != nil {
		return nil, fmt.Errorf("storage: failed to migrate %s: %w", backend, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("storage: failed to get %s handle: %w", backend, err)
	}

	return &Storage{
		Backend:  backend,
		Products: repositories.NewGORMProductRepository(db),
		Contacts: repositories.NewGORMContactRepository(db),
		Users:    repositories.NewGORMUserRepository(db),
		Orders:   repositories.NewGORMOrderRepository(db),
		ping:     sqlDB.PingContext,
		close:    func(context.Context) error { return sqlDB.Close() },
	}, nil
}

func openMongo(ctx context.Context, dsn string) (*Storage, error) {
	name, err := mongoDatabaseName(dsn)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("storage: mongo ping failed: %w", err)
	}

	store := repositories.NewMongoStore(client.Database(name))
	if err := store.EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Storage{
		Backend:  "mongodb",
		Products: store.Products(),
		Contacts: store.Contacts(),
		Users:    store.Users(),
		Orders:   store.Orders(),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func mongoDatabaseName(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("storage: invalid mongo url: %w", err)
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name, nil
	}
	return DefaultMongoDatabase, nil
}

// redact hides the password of a URL-shaped connection string.
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
