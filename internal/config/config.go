package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv            string
	Port              string
	LogLevel          string
	LogFormat         string
	KeepaliveInterval time.Duration
	SubscriberBuffer  int
	MaxStreamConns    int64
	MaxStreamPerIP    int
	StreamConnsPerSec float64
	StreamConnsBurst  int
}

func Load() (*Config, error) {
	keepaliveSecs, err := getEnvInt("KEEPALIVE_INTERVAL", 30)
	if err != nil {
		return nil, err
	}
	subscriberBuffer, err := getEnvInt("SUBSCRIBER_BUFFER", 16)
	if err != nil {
		return nil, err
	}
	maxStreamConns, err := getEnvInt("MAX_STREAM_CONNS", 256)
	if err != nil {
		return nil, err
	}
	maxStreamPerIP, err := getEnvInt("MAX_STREAM_CONNS_PER_IP", 10)
	if err != nil {
		return nil, err
	}
	streamConnsPerSec, err := getEnvFloat("STREAM_CONNS_PER_SECOND", 5.0)
	if err != nil {
		return nil, err
	}
	streamConnsBurst, err := getEnvInt("STREAM_CONNS_BURST", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		KeepaliveInterval: time.Duration(keepaliveSecs) * time.Second,
		SubscriberBuffer:  subscriberBuffer,
		MaxStreamConns:    int64(maxStreamConns),
		MaxStreamPerIP:    maxStreamPerIP,
		StreamConnsPerSec: streamConnsPerSec,
		StreamConnsBurst:  streamConnsBurst,
	}

	if cfg.KeepaliveInterval <= 0 {
		return nil, fmt.Errorf("KEEPALIVE_INTERVAL must be positive")
	}
	if cfg.SubscriberBuffer <= 0 {
		return nil, fmt.Errorf("SUBSCRIBER_BUFFER must be positive")
	}
	if cfg.MaxStreamConns <= 0 {
		return nil, fmt.Errorf("MAX_STREAM_CONNS must be positive")
	}
	if cfg.MaxStreamPerIP <= 0 {
		return nil, fmt.Errorf("MAX_STREAM_CONNS_PER_IP must be positive")
	}
	if cfg.StreamConnsPerSec <= 0 {
		return nil, fmt.Errorf("STREAM_CONNS_PER_SECOND must be positive")
	}
	if cfg.StreamConnsBurst <= 0 {
		return nil, fmt.Errorf("STREAM_CONNS_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}
