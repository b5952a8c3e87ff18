// Package redis stores SWML documents in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/ports"
)

// DefaultPrefix namespaces the keys written by Store.
const DefaultPrefix = "swml:"

// Store implements ports.DocumentStore using Redis. Each document is a hash
// under <prefix>doc:<name> holding its format and data; the names are indexed
// in the sorted set <prefix>index.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store from a connection URL such as
// "redis://:password@localhost:6379/0".
func New(url string, opts ...Option) (*Store, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + "doc:" + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save stores data under name, replacing any previous version.
func (s *Store) Save(ctx context.Context, name string, data []byte, f codec.Format) error {
	if !ports.ValidName(name) {
		return fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(name))
	pipe.HSet(ctx, s.key(name), "format", string(f), "data", data)
	// equal scores keep the index in lexical order
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: 0, Member: name})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save %s to redis: %w", name, err)
	}
	return nil
}

// Load retrieves a document.
func (s *Store) Load(ctx context.Context, name string) (ports.StoredDocument, error) {
	if !ports.ValidName(name) {
		return ports.StoredDocument{}, fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}

	fields, err := s.client.HGetAll(ctx, s.key(name)).Result()
	if err != nil && !errors.Is(err, backend.Nil) {
		return ports.StoredDocument{}, fmt.Errorf("load %s from redis: %w", name, err)
	}
	data, ok := fields["data"]
	if !ok {
		return ports.StoredDocument{}, fmt.Errorf("%w: %s", ports.ErrDocumentNotFound, name)
	}
	f, err := codec.ParseFormat(fields["format"])
	if err != nil {
		return ports.StoredDocument{}, fmt.Errorf("load %s from redis: %w", name, err)
	}
	return ports.StoredDocument{Name: name, Format: f, Data: []byte(data)}, nil
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !ports.ValidName(name) {
		return fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete %s from redis: %w", name, err)
	}
	return nil
}

// List returns the stored names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
