package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type LoggingConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"LOG_FORMAT" default:"text"`
	Directory string `envconfig:"LOG_DIR" default:"./logs"`
}

type SecurityConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	GroupID string   `envconfig:"KAFKA_GROUP_ID" default:"mesaya-api"`
}

type RedisConfig struct {
	// Addr empty keeps sessions in process memory.
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type WebsocketConfig struct {
	DefaultEntity  string   `envconfig:"WS_DEFAULT_ENTITY" default:"reservations"`
	Entities       []string `envconfig:"WS_ENTITIES" default:"reservations,restaurants"`
	AllowedActions []string `envconfig:"WS_ALLOWED_ACTIONS" default:"created,updated"`
	SendBuffer     int      `envconfig:"WS_SEND_BUFFER" default:"8"`
}

type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Security  SecurityConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Websocket WebsocketConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	cfg.Server.Port = strings.TrimSpace(cfg.Server.Port)
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if strings.TrimSpace(cfg.Security.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be blank")
	}
	return &cfg, nil
}

// Topics returns every entity.action topic the realtime feed listens on.
func (c *Config) Topics() []string {
	topics := make([]string, 0, len(c.Websocket.Entities)*len(c.Websocket.AllowedActions))
	for _, entity := range c.Websocket.Entities {
		entity = strings.TrimSpace(entity)
		if entity == "" {
			continue
		}
		for _, action := range c.Websocket.AllowedActions {
			action = strings.TrimSpace(action)
			if action == "" {
				continue
			}
			topics = append(topics, entity+"."+action)
		}
	}
	return topics
}
