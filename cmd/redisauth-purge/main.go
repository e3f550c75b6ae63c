// Command redisauth-purge removes persisted auth state from Redis.
//
// It covers both layouts: per-key namespaces written by [redisauth.Open]
// and single-hash namespaces written by [redisauth.OpenHashed].
//
// Run:
//
//	redisauth-purge flat session-1
//	redisauth-purge hashed session-1
//
// Connection settings come from flags, with REDIS_ADDR and REDIS_PASSWORD
// as environment fallbacks. A local .env file is honored when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	redisauth "github.com/PGRjoystick/baileys-redis-auth"
)

var (
	addr     string
	password string
	db       int
	timeout  time.Duration
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	root := &cobra.Command{
		Use:          "redisauth-purge",
		Short:        "Remove persisted auth state from Redis",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&addr, "addr", envOr("REDIS_ADDR", "127.0.0.1:6379"), "redis address")
	root.PersistentFlags().StringVar(&password, "password", os.Getenv("REDIS_PASSWORD"), "redis password")
	root.PersistentFlags().IntVar(&db, "db", 0, "redis database number")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")

	root.AddCommand(flatCmd(), hashedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func flatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flat [namespace]",
		Short: "Delete a namespace stored as individual keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0] + ":*"
			return withClient(func(ctx context.Context, client *redis.Client) error {
				if err := redisauth.DeleteByPattern(ctx, client, pattern); err != nil {
					return err
				}
				fmt.Printf("Deleted keys matching %s\n", pattern)
				return nil
			})
		},
	}
}

func hashedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashed [namespace]",
		Short: "Delete a namespace stored as a single hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client *redis.Client) error {
				if err := redisauth.DeleteHash(ctx, client, args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted hash for namespace %s\n", args[0])
				return nil
			})
		},
	}
}

// withClient dials Redis with the persistent connection flags, verifies the
// connection, and runs fn under the command timeout.
func withClient(fn func(context.Context, *redis.Client) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return fn(ctx, client)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
