package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr        string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN       string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"secret"`
	GatewayAddr       string        `env:"PAYOUT_GATEWAY_ADDRESS" envDefault:"http://localhost:8081"`
	GatewayAPIKey     string        `env:"PAYOUT_GATEWAY_API_KEY" envDefault:""`
	GatewayTimeout    time.Duration `env:"PAYOUT_GATEWAY_TIMEOUT" envDefault:"30s"`
	GatewayRPS        float64       `env:"PAYOUT_GATEWAY_RPS" envDefault:"10"`
	Schedule          string        `env:"SETTLEMENT_SCHEDULE" envDefault:"@hourly"`
	BatchSize         int           `env:"SETTLEMENT_BATCH_SIZE" envDefault:"100"`
	Workers           int           `env:"SETTLEMENT_WORKERS" envDefault:"4"`
	ClaimLease        time.Duration `env:"SETTLEMENT_CLAIM_LEASE" envDefault:"10m"`
	MinPoints         int64         `env:"REDEMPTION_MIN_POINTS" envDefault:"100"`
	PointValue        string        `env:"REDEMPTION_POINT_VALUE" envDefault:"0.10"`
	Currency          string        `env:"REDEMPTION_CURRENCY" envDefault:"INR"`
	RedisAddr         string        `env:"REDIS_ADDRESS" envDefault:""`
	CreateLimit       int           `env:"REDEMPTION_CREATE_LIMIT" envDefault:"5"`
	CreateLimitWindow time.Duration `env:"REDEMPTION_CREATE_WINDOW" envDefault:"1m"`
	AMQPURL           string        `env:"AMQP_URL" envDefault:""`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	RedisAddr   string
	AMQPURL     string
}

// GatewayConfig модель настроек работы с платёжным шлюзом выплат
type GatewayConfig struct {
	GatewayAddr string
	APIKey      string
	Timeout     time.Duration
	RPS         float64
}

// SettlementConfig модель настроек пакетной обработки выплат
type SettlementConfig struct {
	Schedule   string
	BatchSize  int
	Workers    int
	ClaimLease time.Duration
}

// RedemptionConfig модель правил создания заявок на вывод баллов
type RedemptionConfig struct {
	MinPoints         int64
	PointValue        string
	Currency          string
	CreateLimit       int
	CreateLimitWindow time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server     ServerConfig
	Gateway    GatewayConfig
	Settlement SettlementConfig
	Redemption RedemptionConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server     = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel   = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN        = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN (empty - in-memory storage)")
		secret     = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		gateway    = pflag.StringP("gateway", "g", args.GatewayAddr, "Payout gateway base URL.")
		apiKey     = pflag.String("gateway_key", args.GatewayAPIKey, "Payout gateway API key.")
		timeout    = pflag.Duration("gateway_timeout", args.GatewayTimeout, "Payout gateway call timeout.")
		rps        = pflag.Float64("gateway_rps", args.GatewayRPS, "Payout gateway requests per second.")
		schedule   = pflag.StringP("schedule", "c", args.Schedule, "Settlement cron schedule.")
		batchSize  = pflag.Int("batch_size", args.BatchSize, "Settlement batch size.")
		workers    = pflag.IntP("workers", "w", args.Workers, "Settlement concurrent workers.")
		lease      = pflag.Duration("claim_lease", args.ClaimLease, "Settlement claim lease.")
		minPoints  = pflag.Int64("min_points", args.MinPoints, "Minimum points per redemption.")
		pointValue = pflag.String("point_value", args.PointValue, "Payout amount per point.")
		currency   = pflag.String("currency", args.Currency, "Payout currency.")
		redisAddr  = pflag.StringP("redis", "r", args.RedisAddr, "Redis address (empty - no throttling).")
		limit      = pflag.Int("create_limit", args.CreateLimit, "Redemption requests per earner per window.")
		window     = pflag.Duration("create_window", args.CreateLimitWindow, "Redemption throttle window.")
		amqpURL    = pflag.StringP("amqp", "q", args.AMQPURL, "RabbitMQ URL (empty - events disabled).")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
			RedisAddr:   *redisAddr,
			AMQPURL:     *amqpURL,
		},
		Gateway: GatewayConfig{
			GatewayAddr: *gateway,
			APIKey:      *apiKey,
			Timeout:     *timeout,
			RPS:         *rps,
		},
		Settlement: SettlementConfig{
			Schedule:   *schedule,
			BatchSize:  *batchSize,
			Workers:    *workers,
			ClaimLease: *lease,
		},
		Redemption: RedemptionConfig{
			MinPoints:         *minPoints,
			PointValue:        *pointValue,
			Currency:          *currency,
			CreateLimit:       *limit,
			CreateLimitWindow: *window,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Gateway: GatewayConfig{
			GatewayAddr: "http://localhost:8081",
			Timeout:     30 * time.Second,
			RPS:         10,
		},
		Settlement: SettlementConfig{
			Schedule:   "@hourly",
			BatchSize:  100,
			Workers:    4,
			ClaimLease: 10 * time.Minute,
		},
		Redemption: RedemptionConfig{
			MinPoints:         100,
			PointValue:        "0.10",
			Currency:          "INR",
			CreateLimit:       5,
			CreateLimitWindow: time.Minute,
		},
	}
}
