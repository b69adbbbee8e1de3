package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Calculator API.
	APIAddr    string
	APIEnabled bool

	// Sink circuit breaker.
	SinkBreakerMaxFailures uint32
	SinkBreakerTimeout     time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	maxFailures, err := parseBreakerMaxFailures()
	if err != nil {
		return nil, err
	}

	breakerTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("SINK_BREAKER_TIMEOUT", "30s"))
	if err != nil || breakerTimeout <= 0 {
		return nil, errors.New("invalid SINK_BREAKER_TIMEOUT")
	}

	apiEnabled := true
	if v := os.Getenv("API_ENABLED"); v != "" {
		apiEnabled = v == "true"
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-weather-observations"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "comfort-reports"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "meteocalc"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		APIAddr:    sharedcfg.EnvOrDefault("API_ADDR", ":8081"),
		APIEnabled: apiEnabled,

		SinkBreakerMaxFailures: maxFailures,
		SinkBreakerTimeout:     breakerTimeout,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.APIEnabled && cfg.APIAddr == cfg.HTTPAddr {
		return nil, fmt.Errorf("API_ADDR %q collides with HTTP_ADDR", cfg.APIAddr)
	}

	return cfg, nil
}

func parseBreakerMaxFailures() (uint32, error) {
	s := sharedcfg.EnvOrDefault("SINK_BREAKER_MAX_FAILURES", "5")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, errors.New("invalid SINK_BREAKER_MAX_FAILURES")
	}
	return uint32(n), nil
}
