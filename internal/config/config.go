package config

import (
	"fmt"
	"time"

	"freight-quotes/internal/logger"

	"github.com/spf13/viper"
)

// Email providers understood by pkg/mailer.
const (
	EmailProviderSES      = "ses"
	EmailProviderSendGrid = "sendgrid"
)

type Config struct {
	AppName      string `mapstructure:"APP_NAME"`
	ServerPort   string `mapstructure:"SERVER_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Admin review
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`

	// Outbound email
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailProvider  string `mapstructure:"EMAIL_PROVIDER"`
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	AWSRegion      string `mapstructure:"AWS_REGION"`

	// Outbound SMS. An empty TwilioPhoneNumber disables the SMS path.
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `mapstructure:"TWILIO_PHONE_NUMBER"`

	QuotePersistTimeout time.Duration `mapstructure:"QUOTE_PERSIST_TIMEOUT"`
	NotifyOnSubmit      bool          `mapstructure:"NOTIFY_ON_SUBMIT"`
	NotifyTimeout       time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "freight-quotes")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CLIENT_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADMIN_EMAIL", "admin@808freight.com")
	v.SetDefault("EMAIL_FROM", "808 Freight <noreply@808freight.com>")
	v.SetDefault("EMAIL_PROVIDER", EmailProviderSES)
	v.SetDefault("AWS_REGION", "us-west-2")
	v.SetDefault("QUOTE_PERSIST_TIMEOUT", "10s")
	v.SetDefault("NOTIFY_ON_SUBMIT", true)
	v.SetDefault("NOTIFY_TIMEOUT", "30s")

	// AutomaticEnv only feeds Unmarshal for keys viper already knows about.
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "ADMIN_PASSWORD_HASH", "SENDGRID_API_KEY",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER",
	} {
		v.SetDefault(key, "")
	}
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		// A missing .env is fine, the environment is enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Logger.Info("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.EmailProvider {
	case EmailProviderSES:
	case EmailProviderSendGrid:
		if c.SendGridAPIKey == "" {
			return fmt.Errorf("config: SENDGRID_API_KEY is required when EMAIL_PROVIDER=sendgrid")
		}
	default:
		return fmt.Errorf("config: unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}
	if c.QuotePersistTimeout <= 0 {
		return fmt.Errorf("config: QUOTE_PERSIST_TIMEOUT must be positive")
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("config: NOTIFY_TIMEOUT must be positive")
	}
	return nil
}

// SMSEnabled reports whether enough Twilio settings are present to send texts.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}
