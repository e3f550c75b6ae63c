package redisauth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/PGRjoystick/baileys-redis-auth/bufferjson"
	"github.com/PGRjoystick/baileys-redis-auth/creds"
	"github.com/PGRjoystick/baileys-redis-auth/internal/scheme"
)

// Store is the auth-state handle for one session namespace. It owns the
// in-memory credential bundle and mediates every Redis access for the
// namespace; the physical key layout is fixed at open time.
type Store struct {
	client    redis.UniversalClient
	scheme    scheme.Scheme
	creds     *creds.Creds
	keys      *KeyStore
	metrics   *Metrics
	logger    logrus.FieldLogger
	namespace string
}

// Open connects to Redis and loads the namespace's credential bundle using
// the flat key layout. A namespace that has never been written gets a fresh
// bundle in memory; nothing is persisted until [Store.SaveCreds].
func Open(ctx context.Context, cfg Config) (*Store, error) {
	return open(ctx, cfg, func(client redis.UniversalClient, namespace string) scheme.Scheme {
		return scheme.NewFlat(client, namespace)
	})
}

// OpenHashed is [Open] with the hashed layout: all fields live inside the
// single hash "authState:<namespace>". The connection is additionally named
// after the namespace, best effort, so sessions are identifiable in CLIENT
// LIST output.
func OpenHashed(ctx context.Context, cfg Config) (*Store, error) {
	s, err := open(ctx, cfg, func(client redis.UniversalClient, namespace string) scheme.Scheme {
		return scheme.NewHashed(client, namespace)
	})
	if err != nil {
		return nil, err
	}
	go s.setClientName()
	return s, nil
}

func open(ctx context.Context, cfg Config, layout func(redis.UniversalClient, string) scheme.Scheme) (*Store, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(cfg.Redis)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	s := &Store{
		client:    client,
		scheme:    layout(client, cfg.Namespace),
		metrics:   NewMetrics(cfg.Metrics),
		logger:    cfg.Logger,
		namespace: cfg.Namespace,
	}
	s.keys = &KeyStore{store: s}

	if err := s.loadCreds(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) loadCreds(ctx context.Context) error {
	data, err := s.scheme.Read(ctx, scheme.CredsField)
	if err != nil {
		return err
	}

	if data == nil {
		fresh, err := creds.New()
		if err != nil {
			return err
		}
		s.creds = fresh
		s.metrics.Inc(MetricCredsInitialized)
		s.logger.WithFields(logrus.Fields{
			"namespace": s.namespace,
			"layout":    s.scheme.Name(),
		}).Debug("initialized fresh credentials")
		return nil
	}

	bundle := &creds.Creds{}
	if err := bufferjson.Decode(data, bundle); err != nil {
		return fmt.Errorf("%w: %v", ErrCredsCorrupt, err)
	}
	s.creds = bundle
	s.metrics.Inc(MetricCredsLoaded)
	s.logger.WithFields(logrus.Fields{
		"namespace": s.namespace,
		"layout":    s.scheme.Name(),
	}).Debug("loaded persisted credentials")
	return nil
}

// Creds returns the in-memory credential bundle. The protocol client
// mutates it directly; changes reach Redis only through [Store.SaveCreds].
func (s *Store) Creds() *creds.Creds {
	return s.creds
}

// Keys returns the keyed-record accessor for this namespace.
func (s *Store) Keys() *KeyStore {
	return s.keys
}

// Client exposes the underlying Redis connection for callers that need
// commands the store does not wrap. It is released by [Store.Close].
func (s *Store) Client() redis.UniversalClient {
	return s.client
}

// Close releases the store's Redis connection. The in-memory bundle stays
// readable; further Redis operations fail with [ErrRedisUnavailable].
func (s *Store) Close() error {
	return s.client.Close()
}

// Namespace reports the namespace this store was opened with.
func (s *Store) Namespace() string {
	return s.namespace
}

// SaveCreds persists the current in-memory bundle, replacing whatever the
// namespace held before.
//
//	Performance: 1 Redis command (SET or HSET).
func (s *Store) SaveCreds(ctx context.Context) error {
	data, err := bufferjson.Marshal(s.creds)
	if err != nil {
		return err
	}
	if err := s.scheme.Write(ctx, scheme.CredsField, data); err != nil {
		return err
	}
	s.metrics.Inc(MetricCredsSaved)
	return nil
}

// MetricsSnapshot copies the store's operation counters.
func (s *Store) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

const clientNameTimeout = 5 * time.Second

// setClientName runs detached from the open path: the diagnostic name is
// cosmetic and must neither block nor fail a successful open.
func (s *Store) setClientName() {
	ctx, cancel := context.WithTimeout(context.Background(), clientNameTimeout)
	defer cancel()

	if err := s.client.Do(ctx, "client", "setname", s.namespace).Err(); err != nil {
		s.logger.WithFields(logrus.Fields{
			"namespace": s.namespace,
			"error":     err.Error(),
		}).Debug("could not set connection name")
	}
}
