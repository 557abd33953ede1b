package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is built once in main and shared read-only by every component.
type Config struct {
	Env  string
	Port string

	DatabaseURL   string
	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuCacheTTL  time.Duration

	AuthRatePerMin int
	TrustProxy     bool
	CORSOrigins    []string
	LogLevel       slog.Level
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup func, which keeps tests off the
// real environment.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	e := env{lookup: lookup}

	cfg := &Config{
		Env:            e.str("APP_ENV", "production"),
		Port:           e.str("PORT", "3000"),
		DatabaseURL:    e.str("DATABASE_URL", ""),
		DBMaxOpen:      e.int("DB_MAX_OPEN", 25),
		DBMaxIdle:      e.int("DB_MAX_IDLE", 25),
		DBMaxLifetime:  time.Duration(e.int("DB_MAX_LIFETIME", 300)) * time.Second,
		JWTSecret:      e.str("JWT_SECRET", ""),
		BcryptCost:     e.int("BCRYPT_COST", bcrypt.DefaultCost),
		RedisAddr:      e.str("REDIS_ADDR", ""),
		RedisPassword:  e.str("REDIS_PASSWORD", ""),
		RedisDB:        e.int("REDIS_DB", 0),
		AuthRatePerMin: e.int("AUTH_RATE_PER_MIN", 30),
		TrustProxy:     e.bool("TRUST_PROXY", false),
		CORSOrigins:    splitList(e.str("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.TokenTTL, err = ParseTTL(e.str("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("config: TOKEN_TTL: %w", err)
	}
	if cfg.MenuCacheTTL, err = ParseTTL(e.str("MENU_CACHE_TTL", "1m")); err != nil {
		return nil, fmt.Errorf("config: MENU_CACHE_TTL: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(e.str("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would fall back to unsafe defaults.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("config: DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("config: JWT_SECRET is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("config: TOKEN_TTL must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("config: BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	return errors.Join(errs...)
}

// Debug reports whether internal error details may be exposed to clients.
func (c *Config) Debug() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// ParseTTL parses durations such as "15m", "1h", "20s", or a bare number of minutes.
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}

	if strings.HasSuffix(s, "m") ||
		strings.HasSuffix(s, "h") ||
		strings.HasSuffix(s, "s") {
		return time.ParseDuration(s)
	}

	// fallback: minutes
	min, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(min) * time.Minute, nil
}

type env struct {
	lookup func(string) (string, bool)
}

func (e env) str(key, def string) string {
	if v, ok := e.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (e env) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return def
	}
	return n
}

func (e env) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
