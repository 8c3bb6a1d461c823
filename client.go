// Package strdex provides an embedded, in-process client for the string
// analysis engine: the same core the HTTP server exposes, without the
// transport.
package strdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/strdex/internal/db"
	dbJSONFile "github.com/kailas-cloud/strdex/internal/db/jsonfile"
	dbRedis "github.com/kailas-cloud/strdex/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/strdex/internal/db/sqlite"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	"github.com/kailas-cloud/strdex/internal/domain/record"
	recordrepo "github.com/kailas-cloud/strdex/internal/repository/record"
	stringsuc "github.com/kailas-cloud/strdex/internal/usecase/strings"
)

const defaultReadinessTimeout = 10 * time.Second

// FilterSpec is the structured filter specification used by List.
type FilterSpec = filter.Spec

// Record is a stored string with its derived properties.
type Record = record.Record

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "jsonfile", "sqlite" or "redis"
	path     string
	compress bool
	addrs    []string
	password string
}

// WithJSONFile stores records in a JSON snapshot file at path.
func WithJSONFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "jsonfile"
		c.path = path
	})
}

// WithCompression gzips the JSON snapshot (jsonfile driver only).
func WithCompression() Option {
	return optionFunc(func(c *clientConfig) {
		c.compress = true
	})
}

// WithSQLite stores records in a SQLite database at path.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	})
}

// WithRedis stores records in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// Client is the strdex embedded entry point.
type Client struct {
	store db.Store
	svc   *stringsuc.Service
}

// Open creates a Client, connects to storage and hydrates the record store.
// The provided context is used for the readiness check and initial load.
func Open(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.driver == "" {
		return nil, errors.New("strdex: storage required (use WithJSONFile, WithSQLite or WithRedis)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("strdex: storage not ready: %w", err)
	}

	svc := stringsuc.New(recordrepo.New(store))
	if err := svc.Load(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("strdex: load records: %w", err)
	}

	return &Client{store: store, svc: svc}, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "jsonfile":
		s, err := dbJSONFile.NewStore(dbJSONFile.Config{Path: cfg.path, Compress: cfg.compress})
		if err != nil {
			return nil, fmt.Errorf("strdex: create jsonfile store: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := dbSQLite.NewStore(dbSQLite.Config{Path: cfg.path})
		if err != nil {
			return nil, fmt.Errorf("strdex: create sqlite store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
		if err != nil {
			return nil, fmt.Errorf("strdex: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("strdex: unknown driver %q", cfg.driver)
	}
}

// Close releases the storage connection.
func (c *Client) Close() {
	c.store.Close()
}

// CreateString analyzes and stores a new string.
func (c *Client) CreateString(ctx context.Context, value string) (Record, error) {
	return c.svc.Create(ctx, value)
}

// GetString returns the stored record for a value.
func (c *Client) GetString(ctx context.Context, value string) (Record, error) {
	return c.svc.Get(ctx, value)
}

// DeleteString removes the record for a value.
func (c *Client) DeleteString(ctx context.Context, value string) error {
	return c.svc.Delete(ctx, value)
}

// ListStrings returns the page of records matching spec, in insertion order,
// with the total match count before slicing.
func (c *Client) ListStrings(ctx context.Context, spec FilterSpec, offset, limit int) ([]Record, int) {
	return c.svc.List(ctx, spec, offset, limit)
}

// TranslateQuery converts a natural-language query into a filter spec.
func (c *Client) TranslateQuery(query string) (FilterSpec, error) {
	return c.svc.Translate(query)
}
