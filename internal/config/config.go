package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	BaseURL                       string        `mapstructure:"BASE_URL"`
	SessionSecret                 string        `mapstructure:"SESSION_SECRET"`
	SessionBackend                string        `mapstructure:"SESSION_BACKEND"`
	SessionTTL                    time.Duration `mapstructure:"SESSION_TTL"`
	SecureCookies                 bool          `mapstructure:"SECURE_COOKIES"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	RedisAddr                     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword                 string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                       int           `mapstructure:"REDIS_DB"`
	ValidationPolicy              string        `mapstructure:"VALIDATION_POLICY"`
	EmailAPIKey                   string        `mapstructure:"EMAIL_API_KEY"`
	EmailAPIURL                   string        `mapstructure:"EMAIL_API_URL"`
	EmailFrom                     string        `mapstructure:"EMAIL_FROM"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	RabbitMQURL                   string        `mapstructure:"RABBITMQ_URL"`
	RabbitMQQueue                 string        `mapstructure:"RABBITMQ_QUEUE"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BASE_URL", "http://127.0.0.1:8080")
	viper.SetDefault("SESSION_BACKEND", "sqlite")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SECURE_COOKIES", false)
	viper.SetDefault("DATABASE_PATH", "hotel.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("VALIDATION_POLICY", "standard")
	viper.SetDefault("EMAIL_API_URL", "https://api.resend.com")
	viper.SetDefault("EMAIL_FROM", "Hotel <reservas@example.com>")
	viper.SetDefault("RABBITMQ_QUEUE", "hotel.notifications")

	viper.BindEnv("SESSION_SECRET")
	viper.BindEnv("REDIS_PASSWORD")
	viper.BindEnv("EMAIL_API_KEY")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("RABBITMQ_URL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if config.SessionSecret == "" {
		config.SessionSecret = randomSecret()
		log.Printf("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	return &config
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate session secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
