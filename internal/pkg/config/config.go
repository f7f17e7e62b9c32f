package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Hotel     HotelConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	TxMaxRetries int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBase  time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

// HotelConfig carries the business parameters that used to be ambient settings.
type HotelConfig struct {
	TimeZone                 string          `envconfig:"HOTEL_TIMEZONE" default:"UTC"`
	Currency                 string          `envconfig:"HOTEL_CURRENCY" default:"USD"`
	TaxRate                  decimal.Decimal `envconfig:"HOTEL_TAX_RATE" default:"0.10"`
	DefaultPolicyName        string          `envconfig:"HOTEL_DEFAULT_POLICY_NAME" default:"Standard"`
	DefaultFullRefundDays    int             `envconfig:"HOTEL_DEFAULT_FULL_REFUND_DAYS" default:"7"`
	DefaultPartialRefundDays int             `envconfig:"HOTEL_DEFAULT_PARTIAL_REFUND_DAYS" default:"2"`
	DefaultPartialRefundPct  decimal.Decimal `envconfig:"HOTEL_DEFAULT_PARTIAL_REFUND_PERCENTAGE" default:"50"`
	CheckoutCleaningMinutes  int             `envconfig:"HOTEL_CHECKOUT_CLEANING_MINUTES" default:"30"`
	NodeID                   int64           `envconfig:"HOTEL_NODE_ID" default:"1"`
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type CacheConfig struct {
	PricingRuleTTL  time.Duration `envconfig:"CACHE_PRICING_RULE_TTL" default:"5m"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"10m"`
}

type SeedConfig struct {
	PricingRules  bool   `envconfig:"SEED_PRICING_RULES" default:"true"`
	AdminEmail    string `envconfig:"SEED_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the configured zone is unknown.
func (c HotelConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("unknown hotel time zone, falling back to UTC", "timezone", c.TimeZone, "error", err.Error())
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations envconfig cannot express with tags alone.
func (c Config) Validate() error {
	if c.JWT.AccessTokenDuration <= 0 {
		return fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %s", c.JWT.AccessTokenDuration)
	}
	if c.JWT.RefreshTokenDuration <= c.JWT.AccessTokenDuration {
		return fmt.Errorf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed JWT_ACCESS_TOKEN_DURATION (%s)",
			c.JWT.RefreshTokenDuration, c.JWT.AccessTokenDuration)
	}
	h := c.Hotel
	if h.DefaultFullRefundDays < h.DefaultPartialRefundDays || h.DefaultPartialRefundDays < 0 {
		return fmt.Errorf("refund windows out of order: full=%d partial=%d",
			h.DefaultFullRefundDays, h.DefaultPartialRefundDays)
	}
	if h.DefaultPartialRefundPct.IsNegative() || h.DefaultPartialRefundPct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("HOTEL_DEFAULT_PARTIAL_REFUND_PERCENTAGE out of range: %s", h.DefaultPartialRefundPct)
	}
	if h.TaxRate.IsNegative() {
		return fmt.Errorf("HOTEL_TAX_RATE must not be negative: %s", h.TaxRate)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: time.Second,
			WriteTimeout:      5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,

			TxMaxRetries: 3,
			TxRetryBase:  20 * time.Millisecond,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-hotel-core",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Hotel: HotelConfig{
			TimeZone:                 "UTC",
			Currency:                 "USD",
			TaxRate:                  decimal.RequireFromString("0.10"),
			DefaultPolicyName:        "Standard",
			DefaultFullRefundDays:    7,
			DefaultPartialRefundDays: 2,
			DefaultPartialRefundPct:  decimal.NewFromInt(50),
			CheckoutCleaningMinutes:  30,
			NodeID:                   1,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Cache: CacheConfig{
			PricingRuleTTL:  time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}
