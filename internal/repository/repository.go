package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Backend names reported by Store.Backend.
const (
	BackendMongo    = "mongodb"
	BackendPostgres = "postgres"
)

// Store bundles the repositories of one backend together with the
// connection that owns them. It is created once at process start and closed
// at shutdown.
type Store struct {
	Contacts ContactRepository
	Blog     BlogRepository

	backend string
	ping    func(ctx context.Context) error
	ensure  func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Open connects to the store named by connString. mongodb:// and
// mongodb+srv:// select MongoDB (database dbName); postgres:// and
// postgresql:// select PostgreSQL.
func Open(ctx context.Context, connString, dbName string) (*Store, error) {
	u, err := url.Parse(connString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		client, err := NewMongoClient(ctx, connString)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, dbName), nil
	case "postgres", "postgresql":
		pool, err := NewPool(ctx, connString)
		if err != nil {
			return nil, err
		}
		return NewPgStore(pool), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// NewMongoClient connects to MongoDB and verifies the connection with a ping.
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewMongoStore builds a Store over the given database.
func NewMongoStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		Contacts: NewMongoContactRepository(db),
		Blog:     NewMongoBlogRepository(db),
		backend:  BackendMongo,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		ensure: func(ctx context.Context) error {
			return ensureMongoIndexes(ctx, db)
		},
		close: client.Disconnect,
	}
}

// NewPgStore builds a Store over the given pool.
func NewPgStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Contacts: NewPgContactRepository(pool),
		Blog:     NewPgBlogRepository(pool),
		backend:  BackendPostgres,
		ping:     pool.Ping,
		ensure: func(ctx context.Context) error {
			return ensurePgSchema(ctx, pool)
		},
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}
}

// Backend reports which store implementation is in use.
func (s *Store) Backend() string { return s.backend }

// Ping checks that the underlying connection is alive.
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// EnsureSchema creates the indexes (MongoDB) or tables (PostgreSQL) the
// repositories rely on. It is idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error { return s.ensure(ctx) }

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }

var _ DB = (*Store)(nil)
