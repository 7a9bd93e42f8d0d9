package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	Recipient    string `mapstructure:"recipient"`
}

type CaptchaConfig struct {
	SiteKey   string `mapstructure:"site_key"`
	SecretKey string `mapstructure:"secret_key"`
	VerifyURL string `mapstructure:"verify_url"`
}

// SiteConfig holds the deployment decisions the two historical variants of
// this site disagreed on: which locale owns the root route and where the
// per-locale resources live.
type SiteConfig struct {
	DefaultLocale   string `mapstructure:"default_locale"`
	TranslationsDir string `mapstructure:"translations_dir"`
	TemplatesDir    string `mapstructure:"templates_dir"`
	ContentDir      string `mapstructure:"content_dir"`
	StaticDir       string `mapstructure:"static_dir"`
}
