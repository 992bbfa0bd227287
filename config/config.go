package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Kiosk    KioskConfig    `yaml:"kiosk"`
	Profile  ProfileConfig  `yaml:"profile"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address      string `yaml:"address"`
	SwaggerDir   string `yaml:"swagger_dir"`
	PublicOrigin string `yaml:"public_origin"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// DatabaseConfig is optional. An empty config leaves the database helper
// unconfigured and every query fails with database.ErrNotConfigured.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) Configured() bool {
	return d.URL != "" || d.Host != ""
}

// DSN returns URL as is, or a postgres:// URL built from the separate
// fields with every part escaped.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{Scheme: "postgres", Host: d.Host, Path: "/" + d.Name}
	if d.Port != 0 {
		u.Host = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	}
	if d.User != "" || d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
		if d.Password == "" {
			u.User = url.User(d.User)
		}
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	InteractionsTopic string   `yaml:"interactions_topic"`
	GroupID           string   `yaml:"group_id"`
}

type KioskConfig struct {
	DeviceID             string `yaml:"device_id"`
	Storage              string `yaml:"storage"` // memory, redis or sqlite
	SQLitePath           string `yaml:"sqlite_path"`
	CatalogCacheTTL      int    `yaml:"catalog_cache_ttl_seconds"`
	RemoteTimeoutSeconds int    `yaml:"remote_timeout_seconds"`
}

func (k KioskConfig) CatalogTTL() time.Duration {
	return time.Duration(k.CatalogCacheTTL) * time.Second
}

func (k KioskConfig) RemoteTimeout() time.Duration {
	if k.RemoteTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(k.RemoteTimeoutSeconds) * time.Second
}

type ProfileConfig struct {
	URL string `yaml:"url"`
}

type WorkerConfig struct {
	CatalogRefreshMinutes int `yaml:"catalog_refresh_minutes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnv lets the standard Postgres environment variables override the
// database section.
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.Database.URL = v
	}
	if v, ok := lookup("PGHOST"); ok && v != "" {
		c.Database.Host = v
	}
	if v, ok := lookup("PGPORT"); ok && v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v, ok := lookup("PGUSER"); ok && v != "" {
		c.Database.User = v
	}
	if v, ok := lookup("PGPASSWORD"); ok && v != "" {
		c.Database.Password = v
	}
	if v, ok := lookup("PGDATABASE"); ok && v != "" {
		c.Database.Name = v
	}
}

func (c *Config) applyDefaults() {
	if c.Kiosk.DeviceID == "" {
		c.Kiosk.DeviceID = "kiosk-local"
	}
	if c.Kiosk.Storage == "" {
		c.Kiosk.Storage = "memory"
	}
	if c.HTTP.PublicOrigin != "" {
		if u, err := url.Parse(c.HTTP.PublicOrigin); err == nil {
			c.HTTP.PublicOrigin = u.Scheme + "://" + u.Host
		}
	}
}
