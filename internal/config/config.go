package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Match    MatchConfig    `koanf:"match"`
	Log      LogConfig      `koanf:"log"`
}

type AppConfig struct {
	AppName     string `koanf:"name"`
	Environment string `koanf:"env"`
	HTTPPort    string `koanf:"http_port"`
}

type DatabaseConfig struct {
	URL        string `koanf:"url"`
	DBHost     string `koanf:"host"`
	DBPort     string `koanf:"port"`
	DBName     string `koanf:"name"`
	DBUser     string `koanf:"user"`
	DBPassword string `koanf:"password"`
	DBSSLMode  string `koanf:"ssl_mode"`

	ConnectTimeout        time.Duration `koanf:"connect_timeout"`
	PoolMaxConns          int32         `koanf:"pool_max_conns"`
	PoolMinConns          int32         `koanf:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `koanf:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `koanf:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `koanf:"pool_health_check_period"`

	// MigrationsDir overrides the migrations embedded in the binary.
	MigrationsDir string `koanf:"migrations_dir"`
	// TraceLevel is a pgx tracelog level ("none", "error", "warn", "info",
	// "debug", "trace").
	TraceLevel string `koanf:"trace_level"`
}

type RedisConfig struct {
	Host     string        `koanf:"host"`
	Port     string        `koanf:"port"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
	Disabled bool          `koanf:"disabled"`
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type MatchConfig struct {
	Concurrency int           `koanf:"concurrency"`
	DefaultMode string        `koanf:"default_mode"`
	RunTimeout  time.Duration `koanf:"run_timeout"`
	LockTTL     time.Duration `koanf:"lock_ttl"`
	// RateLimit caps candidates started per second across all workers, at
	// any concurrency. Zero means unlimited; Load clamps it to MaxRateLimit.
	RateLimit int `koanf:"rate_limit"`
}

const MaxRateLimit = 1000

type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

const configFileEnv = "HIRING_INTEL_CONFIG"

// envKeys maps the environment variables the service has always read onto
// config paths. Anything not listed here is ignored.
var envKeys = map[string]string{
	"APP_NAME":  "app.name",
	"APP_ENV":   "app.env",
	"HTTP_PORT": "app.http_port",

	"DATABASE_URL":                "database.url",
	"DB_HOST":                     "database.host",
	"DB_PORT":                     "database.port",
	"DB_NAME":                     "database.name",
	"DB_USER":                     "database.user",
	"DB_PASSWORD":                 "database.password",
	"DB_SSL_MODE":                 "database.ssl_mode",
	"DB_CONNECT_TIMEOUT":          "database.connect_timeout",
	"DB_POOL_MAX_CONNS":           "database.pool_max_conns",
	"DB_POOL_MIN_CONNS":           "database.pool_min_conns",
	"DB_POOL_MAX_CONN_LIFETIME":   "database.pool_max_conn_lifetime",
	"DB_POOL_MAX_CONN_IDLE_TIME":  "database.pool_max_conn_idle_time",
	"DB_POOL_HEALTH_CHECK_PERIOD": "database.pool_health_check_period",
	"DB_MIGRATIONS_DIR":           "database.migrations_dir",
	"DB_TRACE_LEVEL":              "database.trace_level",

	"REDIS_HOST":     "redis.host",
	"REDIS_PORT":     "redis.port",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",
	"REDIS_TTL":      "redis.ttl",
	"REDIS_DISABLED": "redis.disabled",

	"MATCH_CONCURRENCY":  "match.concurrency",
	"MATCH_DEFAULT_MODE": "match.default_mode",
	"MATCH_RUN_TIMEOUT":  "match.run_timeout",
	"MATCH_LOCK_TTL":     "match.lock_ttl",
	"MATCH_RATE_LIMIT":   "match.rate_limit",

	"LOG_LEVEL":       "log.level",
	"LOG_DEVELOPMENT": "log.development",
}

var requiredKeys = map[string]string{
	"app.name":      "APP_NAME",
	"app.env":       "APP_ENV",
	"app.http_port": "HTTP_PORT",
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Defaults() Config {
	return Config{
		Database: DatabaseConfig{
			DBHost:         "localhost",
			DBPort:         "5432",
			DBSSLMode:      "disable",
			ConnectTimeout: 5 * time.Second,
			TraceLevel:     "error",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
			TTL:  600 * time.Second,
		},
		Match: MatchConfig{
			Concurrency: 1,
			DefaultMode: "append",
			RunTimeout:  2 * time.Minute,
			LockTTL:     5 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load layers defaults, the optional YAML file named by HIRING_INTEL_CONFIG,
// then environment variables.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(configFileEnv)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Empty variables count as unset so they never mask the file.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		value = strings.TrimSpace(value)
		if value == "" {
			return "", nil
		}
		return envKeys[key], value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, err
	}
	trim(&cfg)

	var missing []string
	for path, envName := range requiredKeys {
		if strings.TrimSpace(k.String(path)) == "" {
			missing = append(missing, envName)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Match.Concurrency <= 0 {
		cfg.Match.Concurrency = 1
	}
	cfg.Match.RateLimit = min(max(cfg.Match.RateLimit, 0), MaxRateLimit)

	return cfg, nil
}

func trim(cfg *Config) {
	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.TrimSpace(cfg.App.Environment)
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.Database.URL = strings.TrimSpace(cfg.Database.URL)
	cfg.Redis.Host = strings.TrimSpace(cfg.Redis.Host)
	cfg.Redis.Port = strings.TrimSpace(cfg.Redis.Port)
	cfg.Match.DefaultMode = strings.ToLower(strings.TrimSpace(cfg.Match.DefaultMode))
}
