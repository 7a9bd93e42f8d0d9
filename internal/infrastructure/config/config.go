package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/joanpuche05/fisioterapiavilassar/internal/shared/config"
)

type Config struct {
	Server  sharedConfig.ServerConfig  `mapstructure:"server"`
	Logger  sharedConfig.LoggerConfig  `mapstructure:"logger"`
	Email   sharedConfig.EmailConfig   `mapstructure:"email"`
	Captcha sharedConfig.CaptchaConfig `mapstructure:"captcha"`
	Site    sharedConfig.SiteConfig    `mapstructure:"site"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("FISIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindDeploymentEnv()

	// The config file is optional: a container deployment may carry nothing
	// but environment variables.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// bindDeploymentEnv binds the un-prefixed variable names the hosting
// environment has always used for this site, so existing deployments keep
// working without a config file.
func bindDeploymentEnv() {
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("email.smtp_host", "SMTP_HOST")
	_ = viper.BindEnv("email.smtp_port", "SMTP_PORT")
	_ = viper.BindEnv("email.smtp_user", "SMTP_USER")
	_ = viper.BindEnv("email.smtp_password", "SMTP_PASSWORD")
	_ = viper.BindEnv("email.from_address", "SMTP_FROM_EMAIL")
	_ = viper.BindEnv("email.recipient", "RECIPIENT_EMAIL")
	_ = viper.BindEnv("captcha.site_key", "TURNSTILE_SITE_KEY")
	_ = viper.BindEnv("captcha.secret_key", "TURNSTILE_SECRET_KEY")
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 4321)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "")
	viper.SetDefault("email.recipient", "")

	viper.SetDefault("captcha.site_key", "")
	viper.SetDefault("captcha.secret_key", "")
	viper.SetDefault("captcha.verify_url", "https://challenges.cloudflare.com/turnstile/v0/siteverify")

	viper.SetDefault("site.default_locale", "ca")
	viper.SetDefault("site.translations_dir", "./web/translations")
	viper.SetDefault("site.templates_dir", "./web/templates")
	viper.SetDefault("site.content_dir", "./web/content")
	viper.SetDefault("site.static_dir", "./web/static")
}
