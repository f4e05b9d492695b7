package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса бронирований
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Booking   BookingConfig   `toml:"booking"`
	Catalog   CatalogConfig   `toml:"catalog"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"` // секунды
	// Искусственная задержка перед созданием бронирования, мс
	ArtificialDelayMs int `toml:"artificial_delay_ms" validate:"min=0"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type StorageConfig struct {
	Driver string `toml:"driver" validate:"oneof=memory redis postgres"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" validate:"min=0,max=65535"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
}

// DSN строка подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
	Key      string `toml:"key"`
}

type BookingConfig struct {
	BusinessHours bool `toml:"business_hours"`
	OpenHour      int  `toml:"open_hour" validate:"min=0,max=23"`
	CloseHour     int  `toml:"close_hour" validate:"min=1,max=24,gtfield=OpenHour"`
}

type CatalogConfig struct {
	// Пустой путь - встроенный каталог
	Path string `toml:"path"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute" validate:"min=0"`
	Burst             int  `toml:"burst" validate:"min=0"`
}

// Default значения по умолчанию: in-memory хранилище, рабочие часы 05-21
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:          3000,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
			ShutdownTimeout:   10,
			ArtificialDelayMs: 1500,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "beauty-booking",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "beauty_booking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Booking: BookingConfig{
			BusinessHours: true,
			OpenHour:      5,
			CloseHour:     21,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 30,
			Burst:             10,
		},
	}
}

// Load читает TOML поверх значений по умолчанию. Отсутствующий файл не ошибка.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения по тегам validate и зависимости между секциями
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host and dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis addr is required for redis storage", ErrInvalidConfig)
		}
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute == 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_minute must be positive", ErrInvalidConfig)
	}

	return nil
}
