package config

import (
	"time"

	"github.com/caarlos0/env/v7"

	"github.com/omniful/wms-dashboard/internal/auth"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Server   ServerConfig
	Upstream UpstreamConfig
	Auth     auth.Config
	Redis    RedisConfig

	// DevMode serves the demo dataset instead of calling the upstream API.
	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	// DemoFallbackOnError substitutes demo data when an upstream call
	// fails. Off unless an operator opts in.
	DemoFallbackOnError bool `env:"DEMO_FALLBACK_ON_ERROR" envDefault:"false"`
}

type ServerConfig struct {
	Port                    string        `env:"SERVER_PORT" envDefault:":8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type UpstreamConfig struct {
	BaseURL string        `env:"WMS_API_BASE_URL" envDefault:"http://localhost:8000/api"`
	Timeout time.Duration `env:"WMS_API_TIMEOUT" envDefault:"10s"`

	// StaticToken bypasses the auth provider; dev and test use only.
	StaticToken string `env:"WMS_API_TOKEN" envDefault:""`
}

type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Parse nested structs
	if err := env.Parse(&cfg.Server); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Upstream); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Auth); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TokenSource picks the auth strategy: a static token when configured,
// otherwise the client-credentials exchange.
func (c *Config) TokenSource() auth.TokenSource {
	if c.Upstream.StaticToken != "" {
		return auth.Static(c.Upstream.StaticToken)
	}
	return auth.NewClientCredentials(c.Auth)
}
