package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DemoRuntime time.Duration
	Store       StoreConfig
	Gemini      GeminiConfig
	Twilio      TwilioConfig
	SMTP        SMTPConfig
	Monitor     MonitorConfig
}

type StoreConfig struct {
	InventoryFile   string
	ActivityLogFile string
	MaxLogEntries   int
}

type GeminiConfig struct {
	APIKey string
}

type TwilioConfig struct {
	AccountSID      string
	AuthToken       string
	WhatsAppNumber  string
	RecipientNumber string
}

// Enabled reports whether the channel has the credentials it needs.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}

type SMTPConfig struct {
	Host      string
	Port      int
	Email     string
	Password  string
	Recipient string
}

// Enabled reports whether the channel has the credentials it needs.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port != 0 && c.Email != "" && c.Password != ""
}

type MonitorConfig struct {
	Interval     time.Duration
	ReportHour   int
	ReportMinute int
	SendTimeout  time.Duration
}

// LoadEnv builds the configuration from environment variables with
// sensible defaults. Absent channel credentials disable that channel
// rather than failing the process.
func LoadEnv() *Config {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		HTTPAddr:    getEnv("HTTP_ADDR", ""),
		DemoRuntime: getEnvDuration("DEMO_RUNTIME", 5*time.Minute),
		Store: StoreConfig{
			InventoryFile:   getEnv("INVENTORY_FILE", "inventory.json"),
			ActivityLogFile: getEnv("ACTIVITY_LOG_FILE", "activity_log.json"),
			MaxLogEntries:   getEnvInt("ACTIVITY_LOG_MAX_ENTRIES", 0),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Twilio: TwilioConfig{
			AccountSID:      getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:       getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppNumber:  getEnv("TWILIO_WHATSAPP_NUMBER", ""),
			RecipientNumber: getEnv("RECIPIENT_WHATSAPP_NUMBER", ""),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_SERVER", "smtp.gmail.com"),
			Port:      getEnvInt("SMTP_PORT", 587),
			Email:     getEnv("SMTP_EMAIL", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			Recipient: getEnv("RECIPIENT_EMAIL", ""),
		},
		Monitor: MonitorConfig{
			Interval:     getEnvDuration("MONITOR_INTERVAL", time.Minute),
			ReportHour:   getEnvInt("REPORT_HOUR", 9),
			ReportMinute: getEnvInt("REPORT_MINUTE", 0),
			SendTimeout:  getEnvDuration("SEND_TIMEOUT", 30*time.Second),
		},
	}

	// The report goes to the sender's own mailbox when no recipient is set.
	if cfg.SMTP.Recipient == "" {
		cfg.SMTP.Recipient = cfg.SMTP.Email
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
