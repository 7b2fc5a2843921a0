// Package config reads process settings from flags and RENTAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"car-rental-core/internal/access"
)

const envPrefix = "RENTAL"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Lock backends
const (
	LockLocal = "local"
	LockRedis = "redis"
)

// Event backends
const (
	EventsLog  = "log"
	EventsAMQP = "amqp"
)

type PostgresConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LockConfig struct {
	Backend string
	Expiry  time.Duration
	Tries   int
}

type EventsConfig struct {
	Backend  string
	AMQPURL  string
	Exchange string
}

// Config is the full process configuration
type Config struct {
	HTTPAddr     string
	LogLevel     string
	Storage      string
	Postgres     PostgresConfig
	Redis        RedisConfig
	Lock         LockConfig
	Events       EventsConfig
	Access       access.Config
	SeedDemoData bool
}

// Load parses args (without the program name) and overlays RENTAL_* env vars.
// Flags given explicitly win over the environment.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("car-rental", pflag.ContinueOnError)

	// server config
	fs.String("http-addr", ":8080", "listen address")
	fs.String("log-level", "info", "logrus level")

	// storage config
	fs.String("storage", StorageMemory, "memory | postgres")
	fs.String("postgres-dsn", "", "lib/pq connection string")

	// redis config
	fs.String("lock-backend", LockLocal, "local | redis")
	fs.String("redis-addr", "", "")
	fs.String("redis-password", "", "")
	fs.Int("redis-db", 0, "")
	fs.Duration("lock-expiry", 8*time.Second, "redis lock ttl")
	fs.Int("lock-tries", 64, "redis lock attempts")

	// events config
	fs.String("events-backend", EventsLog, "log | amqp")
	fs.String("amqp-url", "", "")
	fs.String("amqp-exchange", "car-rental.events", "")

	// access gate
	fs.Bool("access-enforce", false, "hide auctions of owners without an active plan")
	fs.Bool("access-trial-enabled", true, "count running trials as active")

	fs.Bool("seed-demo-data", true, "seed demo cars and auctions in memory mode")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = v.BindEnv("port", "PORT")

	cfg := Config{
		HTTPAddr: v.GetString("http-addr"),
		LogLevel: v.GetString("log-level"),
		Storage:  strings.ToLower(v.GetString("storage")),
		Postgres: PostgresConfig{
			DSN: v.GetString("postgres-dsn"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis-addr"),
			Password: v.GetString("redis-password"),
			DB:       v.GetInt("redis-db"),
		},
		Lock: LockConfig{
			Backend: strings.ToLower(v.GetString("lock-backend")),
			Expiry:  v.GetDuration("lock-expiry"),
			Tries:   v.GetInt("lock-tries"),
		},
		Events: EventsConfig{
			Backend:  strings.ToLower(v.GetString("events-backend")),
			AMQPURL:  v.GetString("amqp-url"),
			Exchange: v.GetString("amqp-exchange"),
		},
		Access: access.Config{
			Enforce:      v.GetBool("access-enforce"),
			TrialEnabled: v.GetBool("access-trial-enabled"),
		},
		SeedDemoData: v.GetBool("seed-demo-data"),
	}

	// platform-provided PORT applies unless the address was set explicitly
	if port := v.GetString("port"); port != "" && !v.IsSet("http-addr") {
		cfg.HTTPAddr = ":" + port
	}

	return cfg, nil
}

// Validate rejects inconsistent combinations
func (c Config) Validate() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http-addr is required"))
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres-dsn is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}

	switch c.Lock.Backend {
	case LockLocal:
	case LockRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis-addr is required for the redis lock backend"))
		}
		if c.Lock.Expiry <= 0 || c.Lock.Tries <= 0 {
			errs = append(errs, errors.New("lock-expiry and lock-tries must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown lock backend %q", c.Lock.Backend))
	}

	switch c.Events.Backend {
	case EventsLog:
	case EventsAMQP:
		if c.Events.AMQPURL == "" {
			errs = append(errs, errors.New("amqp-url is required for the amqp events backend"))
		}
		if c.Events.Exchange == "" {
			errs = append(errs, errors.New("amqp-exchange is required for the amqp events backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown events backend %q", c.Events.Backend))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
