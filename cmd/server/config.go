package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-equipment/internal/redis"
)

var (
	logLevel      string
	redisAddr     string
	redisPassword string
	redisDB       int
)

// flagEnv maps flags to the environment variables that default them
var flagEnv = map[string]string{
	"log-level":      "LOG_LEVEL",
	"redis-addr":     "REDIS_ADDR",
	"redis-password": "REDIS_PASSWORD",
	"redis-db":       "REDIS_DB",
	"port":           "GRPC_PORT",
	"metrics-addr":   "METRICS_ADDR",
	"base-url":       "SRD_BASE_URL",
}

// loadEnv reads .env (or the given files) into the environment, then applies
// the environment to every flag not set on the command line. Variables
// already in the environment win over the files.
func loadEnv(cmd *cobra.Command, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagEnv[f.Name]
		if !ok || f.Changed || setErr != nil {
			return
		}
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return
		}
		if err := f.Value.Set(v); err != nil {
			setErr = fmt.Errorf("invalid %s for --%s: %w", key, f.Name, err)
		}
	})
	return setErr
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// setupLogging installs a JSON slog handler as the default logger
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

// connectRedis opens a client and checks the server answers
func connectRedis(ctx context.Context) (redis.Client, error) {
	client, err := redis.NewClient(redisAddr, &redis.Options{
		Password: redisPassword,
		DB:       redisDB,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "connected to redis", "addr", redisAddr, "db", redisDB)
	return client, nil
}
