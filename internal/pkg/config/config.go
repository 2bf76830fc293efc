package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Settlement SettlementConfig
	Outbox     OutboxConfig
	Redis      RedisConfig
	Gateway    GatewayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"America/Caracas"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Caracas"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

// Tokens are issued by the auth service; this service only validates them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"tigrito-auth"`
}

type SettlementConfig struct {
	// Percentage of the escrowed amount retained by the platform on completion.
	PlatformFeeRatePct decimal.Decimal `envconfig:"PLATFORM_FEE_RATE_PCT" default:"5"`
	// Open postings past their expiresAt are closed by a periodic sweep.
	ExpirySweepInterval time.Duration `envconfig:"POSTING_EXPIRY_SWEEP_INTERVAL" default:"1m"`
	ExpirySweepBatch    int           `envconfig:"POSTING_EXPIRY_SWEEP_BATCH" default:"100"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
	Workers      int           `envconfig:"OUTBOX_WORKERS" default:"4"`
	MaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"8"`
	RetryBase    time.Duration `envconfig:"OUTBOX_RETRY_BASE" default:"5s"`
	Lease        time.Duration `envconfig:"OUTBOX_LEASE" default:"1m"`
}

// Empty Addr disables the asynq publisher and notifications are only logged.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Queue    string `envconfig:"NOTIFICATION_QUEUE" default:"notifications"`
}

type GatewayConfig struct {
	Name             string        `envconfig:"GATEWAY_NAME" default:"sandbox"`
	Timeout          time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	BreakerFailures  uint32        `envconfig:"GATEWAY_BREAKER_FAILURES" default:"5"`
	BreakerOpenFor   time.Duration `envconfig:"GATEWAY_BREAKER_OPEN_FOR" default:"30s"`
	BreakerHalfOpen  uint32        `envconfig:"GATEWAY_BREAKER_HALF_OPEN" default:"1"`
	SandboxDeclineAt int64         `envconfig:"GATEWAY_SANDBOX_DECLINE_ABOVE_CENTS" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Settlement.PlatformFeeRatePct.IsNegative() || cfg.Settlement.PlatformFeeRatePct.GreaterThan(decimal.NewFromInt(100)) {
		return Config{}, fmt.Errorf("PLATFORM_FEE_RATE_PCT must be within [0, 100], got %s", cfg.Settlement.PlatformFeeRatePct)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Caracas",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Caracas",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-settlement-tests",
			Issuer: "tigrito-auth",
		},
		Settlement: SettlementConfig{
			PlatformFeeRatePct:  decimal.NewFromInt(5),
			ExpirySweepInterval: time.Minute,
			ExpirySweepBatch:    100,
		},
		Outbox: OutboxConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			Workers:      2,
			MaxAttempts:  3,
			RetryBase:    10 * time.Millisecond,
			Lease:        5 * time.Second,
		},
		Redis: RedisConfig{
			Queue: "notifications",
		},
		Gateway: GatewayConfig{
			Name:            "sandbox",
			Timeout:         time.Second,
			BreakerFailures: 5,
			BreakerOpenFor:  time.Second,
			BreakerHalfOpen: 1,
		},
	}
}
