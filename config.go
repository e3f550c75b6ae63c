package redisauth

import (
	"errors"
	"io"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultNamespace scopes sessions that do not choose their own namespace.
const DefaultNamespace = "DB1"

// Config carries everything needed to open a [Store]. The zero value is not
// usable; at minimum Redis must be set.
type Config struct {
	// Redis holds go-redis connection options. The store dials its own
	// client from them, exposes it through [Store.Client], and releases it
	// in [Store.Close].
	Redis *redis.Options

	// Namespace scopes every key and field written for this session.
	// Defaults to [DefaultNamespace].
	Namespace string

	// Logger receives best-effort diagnostics at debug level. Defaults to
	// a logger that discards everything.
	Logger logrus.FieldLogger

	// Metrics controls the operation counters exposed through
	// [Store.MetricsSnapshot].
	Metrics MetricsConfig
}

// MetricsConfig toggles metric collection.
type MetricsConfig struct {
	Enabled bool
	// EnableLatencyHistograms additionally records bulk-read latency
	// buckets. Implies nothing unless Enabled is set.
	EnableLatencyHistograms bool
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		c.Logger = logger
	}
	return c
}

// Validate rejects configurations that cannot produce a working store.
// Namespaces may not contain glob metacharacters because the flat layout's
// bulk delete matches on "<namespace>:*".
func (c Config) Validate() error {
	if c.Redis == nil {
		return errors.New("redis connection options required")
	}
	if c.Namespace == "" {
		return errors.New("namespace must not be empty")
	}
	if strings.ContainsAny(c.Namespace, "*?[]") {
		return errors.New("namespace must not contain glob metacharacters")
	}
	if strings.ContainsAny(c.Namespace, " \t\r\n") {
		return errors.New("namespace must not contain whitespace")
	}
	return nil
}
