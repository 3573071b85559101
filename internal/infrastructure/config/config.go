package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RedisConfig struct {
	Addr string
}

type SummarizerConfig struct {
	// APIKey enables the live AI summarizer; empty means the deterministic
	// stub is used instead.
	APIKey  string
	BaseURL string
	Model   string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	LogLevel    string
	LogFormat   string
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Redis       RedisConfig
	Summarizer  SummarizerConfig
	ServiceName string
}

func Load() Config {
	return Config{
		GRPCPort:  getEnvInt("GRPC_PORT", 9094),
		HTTPPort:  getEnvInt("HTTP_PORT", 8094),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "digicar"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "digicar_showcase"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "showcase-events"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Summarizer: SummarizerConfig{
			APIKey:  getEnv("SUMMARIZER_API_KEY", ""),
			BaseURL: getEnv("SUMMARIZER_BASE_URL", "https://api.openai.com/v1/chat/completions"),
			Model:   getEnv("SUMMARIZER_MODEL", "gpt-4o-mini"),
		},
		ServiceName: "vehicle-showcase",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
