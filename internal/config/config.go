package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Booking   BookingConfig   `toml:"booking"`
	SendGrid  SendGridConfig  `toml:"sendgrid"`
	Twilio    TwilioConfig    `toml:"twilio"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Jobs      JobsConfig      `toml:"jobs"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig PostgreSQL для сохраненных пакетов
// Пустой host отключает сохраненные пакеты
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Enabled настроена ли база
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// RedisConfig хранилище броней; пустой addr - хранилище в памяти процесса
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// CatalogConfig путь к TOML с переопределением цен; пустой - встроенный каталог
type CatalogConfig struct {
	File string `toml:"file"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	Timezone          string `toml:"timezone"`
	ReservationTTLMin int    `toml:"reservation_ttl_minutes"`
	CompanyName       string `toml:"company_name"`
}

// Location часовой пояс курорта
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c BookingConfig) ReservationTTL() time.Duration {
	return time.Duration(c.ReservationTTLMin) * time.Minute
}

type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	ToEmail   string `toml:"to_email"`
	ToName    string `toml:"to_name"`
}

func (c SendGridConfig) Enabled() bool {
	return c.APIKey != ""
}

type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	ToNumber   string `toml:"to_number"`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != ""
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig ограничение запросов формы обратной связи по IP
type RateLimitConfig struct {
	InquiryPerMinute int `toml:"inquiry_per_minute"`
	InquiryBurst     int `toml:"inquiry_burst"`
	// Адрес клиента из X-Forwarded-For; только за доверенным прокси
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
}

// JobsConfig периодические задачи в формате cron
type JobsConfig struct {
	ReservationPurgeSpec string `toml:"reservation_purge_spec"`
	PackageRetentionSpec string `toml:"package_retention_spec"`
	PackageRetentionDays int    `toml:"package_retention_days"`
	VisitorCleanupSpec   string `toml:"visitor_cleanup_spec"`
}

func (c JobsConfig) PackageRetention() time.Duration {
	return time.Duration(c.PackageRetentionDays) * 24 * time.Hour
}

// Load читает TOML, затем переменные окружения (и .env, если есть)
// Значения из окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:     LogsConfig{Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "concierge-booking"},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 300},
		Redis:    RedisConfig{KeyPrefix: "concierge:reservation:"},
		Booking: BookingConfig{
			Timezone:          "UTC",
			ReservationTTLMin: 60,
			CompanyName:       "Island Concierge",
		},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: RateLimitConfig{InquiryPerMinute: 5, InquiryBurst: 3},
		Jobs: JobsConfig{
			ReservationPurgeSpec: "@every 5m",
			PackageRetentionSpec: "@daily",
			PackageRetentionDays: 90,
			VisitorCleanupSpec:   "@every 10m",
		},
	}
}

// applyEnv секреты и адреса из окружения
func applyEnv(cfg *Config) error {
	strings := map[string]*string{
		"DB_HOST":            &cfg.Database.Host,
		"DB_USER":            &cfg.Database.User,
		"DB_PASSWORD":        &cfg.Database.Password,
		"DB_NAME":            &cfg.Database.DBName,
		"REDIS_ADDR":         &cfg.Redis.Addr,
		"REDIS_PASSWORD":     &cfg.Redis.Password,
		"SENDGRID_API_KEY":   &cfg.SendGrid.APIKey,
		"SENDGRID_TO_EMAIL":  &cfg.SendGrid.ToEmail,
		"TWILIO_ACCOUNT_SID": &cfg.Twilio.AccountSID,
		"TWILIO_AUTH_TOKEN":  &cfg.Twilio.AuthToken,
		"TWILIO_FROM_NUMBER": &cfg.Twilio.FromNumber,
		"TWILIO_TO_NUMBER":   &cfg.Twilio.ToNumber,
		"BOOKING_TIMEZONE":   &cfg.Booking.Timezone,
		"LOG_LEVEL":          &cfg.Logs.Level,
	}
	for key, dst := range strings {
		if value, ok := os.LookupEnv(key); ok {
			*dst = value
		}
	}

	ints := map[string]*int{
		"HTTP_PORT": &cfg.Server.HTTPPort,
		"DB_PORT":   &cfg.Database.Port,
	}
	for key, dst := range ints {
		value, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
		}
		*dst = n
	}

	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.ReservationTTLMin <= 0 {
		return fmt.Errorf("%w: booking.reservation_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Database.Enabled() && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.SendGrid.Enabled() && (c.SendGrid.FromEmail == "" || c.SendGrid.ToEmail == "") {
		return fmt.Errorf("%w: sendgrid.from_email and sendgrid.to_email are required", ErrInvalidConfig)
	}
	if c.Twilio.Enabled() && (c.Twilio.AuthToken == "" || c.Twilio.FromNumber == "" || c.Twilio.ToNumber == "") {
		return fmt.Errorf("%w: twilio credentials and numbers are required", ErrInvalidConfig)
	}
	if c.RateLimit.InquiryPerMinute <= 0 || c.RateLimit.InquiryBurst <= 0 {
		return fmt.Errorf("%w: ratelimit values must be positive", ErrInvalidConfig)
	}
	if c.Jobs.PackageRetentionDays <= 0 {
		return fmt.Errorf("%w: jobs.package_retention_days must be positive", ErrInvalidConfig)
	}
	return nil
}
