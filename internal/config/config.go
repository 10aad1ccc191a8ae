package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	pkgconfig "github.com/Skotchmaster/furniture_store/pkg/config"
)

// FallbackJWTSecret signs tokens when JWT_SECRET is unset. Fine for a local
// demo, never for a shared deployment.
const FallbackJWTSecret = "fallback-secret-key"

type Config struct {
	pkgconfig.Config

	LogLevel        string
	BcryptCost      int
	CatalogCacheTTL time.Duration
	StaticDir       string

	// Defaulted lists the settings that were empty and fell back to a default.
	Defaulted []string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Config:          pkgconfig.Load(),
		LogLevel:        pkgconfig.EnvDefault("LOG_LEVEL", "info"),
		BcryptCost:      pkgconfig.EnvIntDefault("BCRYPT_COST", bcrypt.DefaultCost),
		CatalogCacheTTL: pkgconfig.EnvDurationDefault("CATALOG_CACHE_TTL", 5*time.Minute),
		StaticDir:       os.Getenv("STATIC_DIR"),
	}

	cfg.Defaulted = pkgconfig.Missing(map[string]string{
		"JWT_SECRET":   string(cfg.JWTSecret),
		"DATABASE_URL": cfg.DatabaseURL,
	})
	if len(cfg.JWTSecret) == 0 {
		cfg.JWTSecret = []byte(FallbackJWTSecret)
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT out of range: %d", cfg.ServerPort)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
