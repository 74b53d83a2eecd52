package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ChangeFeedPostgres = "postgres"
	ChangeFeedKafka    = "kafka"
)

type (
	Tasks struct {
		CacheRefreshInterval time.Duration `validate:"gt=0"`
	}

	HTTPServer struct {
		Port               string        `validate:"required"`
		LogLevel           string        `validate:"omitempty,oneof=debug info warn error"`
		RequestTimeout     time.Duration `validate:"gt=0"` // middleware timeout
		RateLimiterQPS     int           `validate:"gt=0"` // middleware rate limiter capacity
		RateLimiterBurst   int           `validate:"gt=0"` // middleware rate limiter refill
		CORSAllowedOrigins []string      `validate:"dive,required"`
		PprofEnabled       bool
		PprofPort          string `validate:"required_if=PprofEnabled true"`
		GRPCHealthPort     string // пусто - grpc health сервер не поднимается
	}

	Database struct {
		Host     string `validate:"required"`
		Port     string `validate:"required"`
		User     string `validate:"required"`
		Password string `validate:"required"`
		DBName   string `validate:"required"`
		SSLMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
		Migrate  bool
	}

	ChangeFeed struct {
		Driver        string        `validate:"required,oneof=postgres kafka"`
		PgChannel     string        `validate:"required_if=Driver postgres"`
		ReloadTimeout time.Duration `validate:"gt=0"`
	}

	Kafka struct {
		Brokers       []string `validate:"required,min=1,dive,hostname_port"`
		Topic         string   `validate:"required"`
		ConsumerGroup string   `validate:"required"`
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string `validate:"required"`
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		TableChanged TableChanged
	}

	TableChanged struct {
		ProcessTimeout time.Duration `validate:"gt=0"`
	}

	Report struct {
		Timezone string `validate:"omitempty,timezone"` // границы периодов отчета, пусто - UTC
	}

	Config struct {
		Tasks      Tasks
		Report     Report
		Server     HTTPServer
		Database   Database
		ChangeFeed ChangeFeed
		Kafka      Kafka `validate:"-"` // проверяется только при CHANGE_FEED_DRIVER=kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// KafkaEnabled true, если изменения таблиц доставляются через Kafka.
func (c *Config) KafkaEnabled() bool {
	return c.ChangeFeed.Driver == ChangeFeedKafka
}

func loadFromEnv() (*Config, error) {
	cacheRefreshInterval, err := osGetEnvDuration("BACKGROUND_CACHE_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reloadTimeout, err := osGetEnvDuration("CHANGE_FEED_RELOAD_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tableChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_TABLE_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driver := os.Getenv("CHANGE_FEED_DRIVER")
	if driver == "" {
		driver = ChangeFeedPostgres
	}

	return &Config{
		Tasks: Tasks{
			CacheRefreshInterval: cacheRefreshInterval,
		},
		Report: Report{
			Timezone: os.Getenv("REPORT_TIMEZONE"),
		},
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			LogLevel:           os.Getenv("LOG_LEVEL"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			CORSAllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
			GRPCHealthPort:     os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			Migrate:  migrate,
		},
		ChangeFeed: ChangeFeed{
			Driver:        driver,
			PgChannel:     os.Getenv("CHANGE_FEED_PG_CHANNEL"),
			ReloadTimeout: reloadTimeout,
		},
		Kafka: Kafka{
			Brokers:       osGetList("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				TableChanged: TableChanged{
					ProcessTimeout: tableChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	validate := validator.New()

	err := validate.Struct(cfg)
	if err != nil {
		return err
	}

	if cfg.KafkaEnabled() {
		err = validate.Struct(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka: %w", err)
		}
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList разбирает список через запятую, пустые элементы отбрасываются.
func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
