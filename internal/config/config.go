package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key int

const (
	KeyUUID = key(iota)
	KeyLogger
	KeyMetrics
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Redis      Redis
	Kafka      Kafka
	Metrics    Metrics
	Logger     Logger
	Platform   Platform
	Auth       Auth
	Centrifuge Centrifuge
}

type Service struct {
	Name string `env:"RELAY_SERVICE_NAME" env-default:"relay-service"`
	Port string `env:"RELAY_SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"RELAY_SERVICE_POSTGRES_USER"`
	Password string `env:"RELAY_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"RELAY_SERVICE_POSTGRES_DB"`
	Host     string `env:"RELAY_SERVICE_POSTGRES_HOST"`
	Port     string `env:"RELAY_SERVICE_POSTGRES_PORT"`
}

type Redis struct {
	Host     string `env:"RELAY_SERVICE_REDIS_HOST"`
	Port     string `env:"RELAY_SERVICE_REDIS_PORT"`
	Password string `env:"RELAY_SERVICE_REDIS_PASSWORD"`
	DB       int    `env:"RELAY_SERVICE_REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Auth struct {
	SessionSecret  string        `env:"RELAY_SERVICE_SESSION_SECRET"`
	MobileSecret   string        `env:"RELAY_SERVICE_MOBILE_JWT_SECRET"`
	MobileTokenTTL time.Duration `env:"RELAY_SERVICE_MOBILE_TOKEN_TTL" env-default:"1h"`
	GoogleClientID string        `env:"RELAY_SERVICE_GOOGLE_CLIENT_ID"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
