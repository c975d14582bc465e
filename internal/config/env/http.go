package env

import (
	"fmt"

	"slot_backend/internal/config"

	"github.com/kelseyhightower/envconfig"
)

type httpConfig struct {
	Host string `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"HTTP_PORT" default:"8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process http config: %w", err)
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
