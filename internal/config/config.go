package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	GoogleClientID                string   `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret            string   `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL             string   `mapstructure:"GOOGLE_REDIRECT_URL"`
	JWTSecret                     string   `mapstructure:"JWT_SECRET"`
	SheetWebhookURL               string   `mapstructure:"SHEET_WEBHOOK_URL"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	UPIPayeeID                    string   `mapstructure:"UPI_PAYEE_ID"`
	UPIPayeeName                  string   `mapstructure:"UPI_PAYEE_NAME"`
	FestName                      string   `mapstructure:"FEST_NAME"`
	AdminEmails                   []string `mapstructure:"ADMIN_EMAILS"`
	FrontendURL                   string   `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool     `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "utsav.db")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://127.0.0.1:8080/auth/google/callback")
	viper.SetDefault("UPI_PAYEE_NAME", "Utsav Fest")
	viper.SetDefault("FEST_NAME", "Utsav 2026")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")

	viper.BindEnv("GOOGLE_CLIENT_ID")
	viper.BindEnv("GOOGLE_CLIENT_SECRET")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("SHEET_WEBHOOK_URL")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("UPI_PAYEE_ID")
	viper.BindEnv("UPI_PAYEE_NAME")
	viper.BindEnv("FEST_NAME")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// IsAdmin reports whether the given email belongs to a fest organizer.
func (c *Config) IsAdmin(email string) bool {
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}
