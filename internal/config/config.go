package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config rocketrealtor HTTP API configuration
type Config struct {
	HTTP struct {
		Addr           string `yaml:"addr"`
		IdentityHeader string `yaml:"identity_header"` // header injected by the upstream auth gateway
	} `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Events  EventsConfig `yaml:"events"`
	MQTT    MQTTConfig   `yaml:"mqtt"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DatabaseConfig database connection settings
type DatabaseConfig struct {
	Driver             string        `yaml:"driver"` // "postgres" | "sqlite"
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Database           string        `yaml:"database"`
	SSLMode            string        `yaml:"sslmode"`
	MaxConns           int           `yaml:"max_conns"`
	MaxIdle            int           `yaml:"max_idle"`
	SQLitePath         string        `yaml:"sqlite_path"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold"`
}

// RedisConfig Redis settings; cache and stream events are disabled when Enabled is false
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// EventsConfig domain event publishing
type EventsConfig struct {
	Backend string `yaml:"backend"` // "none" | "redis" | "mqtt"
	Stream  string `yaml:"stream"`
}

// MQTTConfig MQTT broker settings (used when events.backend = mqtt)
type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
}

// GetDSN returns the lib/pq connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Load builds the configuration from defaults, an optional YAML file (CONFIG_FILE)
// and environment variables, in that order of precedence (env wins).
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.loadEnv()
	return cfg, nil
}

// Defaults local development defaults
func Defaults() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = ":8080"
	cfg.HTTP.IdentityHeader = "X-User-Id"

	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Database = "rocketrealtor"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SQLitePath = "rocketrealtor.db"
	cfg.Database.SlowQueryThreshold = 200 * time.Millisecond

	cfg.Redis.Addr = "localhost:6379"
	cfg.Cache.TTL = 60 * time.Second

	cfg.Events.Backend = "none"
	cfg.Events.Stream = "rocketrealtor:events"

	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.MQTT.ClientID = "rocketrealtor-api"
	cfg.MQTT.TopicPrefix = "rocketrealtor"
	cfg.MQTT.QoS = 1

	cfg.Metrics.Enabled = true
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() {
	c.HTTP.Addr = getEnv("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.IdentityHeader = getEnv("IDENTITY_HEADER", c.HTTP.IdentityHeader)

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = parseInt(getEnv("DB_PORT", ""), c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Database = getEnv("DB_NAME", c.Database.Database)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", ""), c.Database.MaxConns)
	c.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", ""), c.Database.MaxIdle)
	c.Database.SQLitePath = getEnv("SQLITE_PATH", c.Database.SQLitePath)

	c.Redis.Enabled = parseBool(getEnv("REDIS_ENABLED", ""), c.Redis.Enabled)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = parseInt(getEnv("REDIS_DB", ""), c.Redis.DB)
	if secs := parseInt(getEnv("CACHE_TTL_SECONDS", ""), -1); secs >= 0 {
		c.Cache.TTL = time.Duration(secs) * time.Second
	}

	c.Events.Backend = getEnv("EVENTS_BACKEND", c.Events.Backend)
	c.Events.Stream = getEnv("EVENTS_STREAM", c.Events.Stream)

	c.MQTT.Broker = getEnv("MQTT_BROKER", c.MQTT.Broker)
	c.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", c.MQTT.ClientID)
	c.MQTT.Username = getEnv("MQTT_USERNAME", c.MQTT.Username)
	c.MQTT.Password = getEnv("MQTT_PASSWORD", c.MQTT.Password)
	c.MQTT.TopicPrefix = getEnv("MQTT_TOPIC_PREFIX", c.MQTT.TopicPrefix)

	c.Metrics.Enabled = parseBool(getEnv("METRICS_ENABLED", ""), c.Metrics.Enabled)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
