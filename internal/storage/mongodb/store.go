package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnTimeout = 5 * time.Second

	// Имена коллекций фиксированы: lowercase имени сущности.
	productCollection = "product"
	orderCollection   = "order"
)

// Store оборачивает подключение к MongoDB.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open открывает подключение к MongoDB и проверяет доступность базы.
func Open(ctx context.Context, url, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("open mongo connection: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Name возвращает имя подключённой базы.
func (s *Store) Name() string {
	if s == nil || s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Ping проверяет доступность подключения.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("mongo store is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	return s.client.Ping(pingCtx, readpref.Primary())
}

// CollectionNames возвращает имена коллекций базы.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("mongo store is not initialized")
	}

	listCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	names, err := s.db.ListCollectionNames(listCtx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Close закрывает подключение к БД.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
