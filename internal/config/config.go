package config

import "errors"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Platform PlatformConfig `yaml:"platform"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     string `yaml:"port"     env:"PORT"     env-default:"8080"`
	Timezone string `yaml:"timezone" env:"TZ"       env-default:"UTC"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"data/journal.db"`
}

// PlatformConfig holds community platform credentials. DevUserID bypasses
// token verification with a fixed member id for local development.
type PlatformConfig struct {
	APIKey         string `yaml:"api_key"          env:"WHOP_API_KEY"`
	AppID          string `yaml:"app_id"           env:"WHOP_APP_ID"`
	BaseURL        string `yaml:"base_url"         env:"WHOP_API_BASE_URL" env-default:"https://api.whop.com"`
	TokenPublicKey string `yaml:"token_public_key" env:"WHOP_TOKEN_PUBLIC_KEY"`
	DevUserID      string `yaml:"dev_user_id"      env:"DEV_USER_ID"`
}

func (cfg *Config) Validate() error {
	if cfg.Platform.DevUserID != "" {
		return nil
	}
	if cfg.Platform.AppID == "" {
		return errors.New("WHOP_APP_ID is required outside dev mode")
	}
	if cfg.Platform.TokenPublicKey == "" {
		return errors.New("WHOP_TOKEN_PUBLIC_KEY is required outside dev mode")
	}
	if cfg.Platform.APIKey == "" {
		return errors.New("WHOP_API_KEY is required outside dev mode")
	}
	return nil
}
