package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPAddr   string `envconfig:"HTTP_ADDR" default:":8080"`
	DBPath     string `envconfig:"DB_PATH" default:"data/imok.db"`
	SecretKey  string `envconfig:"SECRET_KEY" default:"change_me_in_production"`
	AppBaseURL string `envconfig:"APP_BASE_URL" default:"https://imok.app"`
	TZ         string `envconfig:"TZ" default:"UTC"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
