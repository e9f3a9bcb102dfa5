package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database (SQLite file — created on first run)
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Frontend
	FrontendDir    string `mapstructure:"FRONTEND_DIR"`    // built SPA bundle served with fallback
	FrontendOrigin string `mapstructure:"FRONTEND_ORIGIN"` // CORS origin for the Vite dev server

	// Business
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 5001)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "database.db")
	viper.SetDefault("FRONTEND_DIR", "frontend/dist")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:5173")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/facturaapp/pdfs")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
