// internal/config/config.go
package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the compiled-in fallback signing secret. It must be
// overridden via JWT_SECRET in any real deployment.
const DefaultJWTSecret = "default_secret_change_me"

type Config struct {
	APIPort  string `mapstructure:"API_PORT"`
	GinMode  string `mapstructure:"GIN_MODE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// AppEnv controls error detail exposure: "development" includes internal
	// error text in responses, anything else suppresses it.
	AppEnv string `mapstructure:"APP_ENV"`

	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTExpirationHours time.Duration `mapstructure:"JWT_EXPIRATION_HOURS"`

	LinodeAPIToken       string        `mapstructure:"LINODE_API_TOKEN"`
	LinodeAPIURL         string        `mapstructure:"LINODE_API_URL"`
	LinodeTimeoutSeconds time.Duration `mapstructure:"LINODE_TIMEOUT_SECONDS"`

	TLSEnable   bool   `mapstructure:"TLS_ENABLE"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`
}

var AppConfig Config

func LoadConfig() error {
	viper.SetConfigFile(".env") // Look for .env file
	viper.AutomaticEnv()        // Read from environment variables as fallback/override

	viper.SetDefault("API_PORT", "3001")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)

	viper.SetDefault("LINODE_API_TOKEN", "")
	viper.SetDefault("LINODE_API_URL", "https://api.linode.com/v4")
	viper.SetDefault("LINODE_TIMEOUT_SECONDS", 10)

	viper.SetDefault("TLS_ENABLE", false)
	viper.SetDefault("TLS_CERT_FILE", "")
	viper.SetDefault("TLS_KEY_FILE", "")

	viper.SetDefault("TRUSTED_PROXIES", "")

	err := viper.ReadInConfig()
	// Ignore if .env file not found, rely on defaults/env vars
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok && err != nil {
		return err
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return err
	}

	// Convert plain numbers to durations
	AppConfig.JWTExpirationHours = AppConfig.JWTExpirationHours * time.Hour
	AppConfig.LinodeTimeoutSeconds = AppConfig.LinodeTimeoutSeconds * time.Second

	return nil
}

// IsDevelopment reports whether the server runs with development error
// reporting (internal error text included in responses).
func IsDevelopment() bool {
	return AppConfig.AppEnv == "development"
}
