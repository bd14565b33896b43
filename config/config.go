package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Generative-language collaborator.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Form-relay sink for booking/order/profile submissions.
	RelayEndpoint string `mapstructure:"RELAY_ENDPOINT"`

	// Admin back-office access.
	AdminAccessKey string `mapstructure:"ADMIN_ACCESS_KEY"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`

	// Simulated delays, in milliseconds. These model the availability probe,
	// the booking/checkout processing spinners, the post-success cart clear
	// and the profile save latency.
	AvailabilityProbeMS  int `mapstructure:"AVAILABILITY_PROBE_MS"`
	BookingProcessingMS  int `mapstructure:"BOOKING_PROCESSING_MS"`
	CheckoutProcessingMS int `mapstructure:"CHECKOUT_PROCESSING_MS"`
	CartClearMS          int `mapstructure:"CART_CLEAR_MS"`
	ProfileSaveMS        int `mapstructure:"PROFILE_SAVE_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("RELAY_ENDPOINT", "https://formspree.io/f/mrbnloke")
	viper.SetDefault("ADMIN_ACCESS_KEY", "")
	viper.SetDefault("JWT_SECRET", "TUMY")
	viper.SetDefault("AVAILABILITY_PROBE_MS", 1500)
	viper.SetDefault("BOOKING_PROCESSING_MS", 2500)
	viper.SetDefault("CHECKOUT_PROCESSING_MS", 2000)
	viper.SetDefault("CART_CLEAR_MS", 500)
	viper.SetDefault("PROFILE_SAVE_MS", 800)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
