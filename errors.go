package redisauth

import (
	"errors"

	"github.com/PGRjoystick/baileys-redis-auth/internal/scheme"
)

var (
	// ErrRedisUnavailable wraps every failed Redis command or connection
	// attempt. The original client error stays in the message.
	ErrRedisUnavailable = scheme.ErrUnavailable
	// ErrCredsCorrupt is returned when a persisted credential bundle no
	// longer decodes. The stored bytes are left in place for inspection.
	ErrCredsCorrupt = errors.New("credential bundle corrupt")
	// ErrRecordCorrupt is returned when a persisted keyed record no longer
	// decodes.
	ErrRecordCorrupt = errors.New("key record corrupt")
)
