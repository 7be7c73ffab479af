package config

import (
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию для Lucky Wave Server
type Config struct {
	// Настройки сервера
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Настройки Redis (хранилище сохранений)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Настройки RabbitMQ (канал игровых событий)
	RabbitMQURL    string `envconfig:"RABBITMQ_URL" required:"true"`
	EventQueueName string `envconfig:"EVENT_QUEUE_NAME" default:"game_events"`

	// Настройки движка
	SaveSlots      int           `envconfig:"SAVE_SLOTS" default:"10"`
	TypingInterval time.Duration `envconfig:"TYPING_INTERVAL" default:"30ms"`

	// CORS
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации lucky-wave-server: %w", err)
	}

	if cfg.SaveSlots <= 0 {
		return nil, fmt.Errorf("SAVE_SLOTS должен быть положительным, получено %d", cfg.SaveSlots)
	}

	log.Printf("Конфигурация Lucky Wave Server загружена:")
	log.Printf("  Port: %s", cfg.Port)
	log.Printf("  LogLevel: %s", cfg.LogLevel)
	log.Printf("  Redis Addr: %s (db %d)", cfg.RedisAddr, cfg.RedisDB)
	log.Printf("  RabbitMQ URL: %s", cfg.RabbitMQURL)
	log.Printf("  Event Queue: %s", cfg.EventQueueName)
	log.Printf("  Save Slots: %d", cfg.SaveSlots)
	log.Printf("  Typing Interval: %v", cfg.TypingInterval)

	return &cfg, nil
}
