package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type Config struct {
	Address            string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"INFO"`
	DatabaseConnection string        `env:"DATABASE_URI"`
	JWTSecret          string        `env:"JWT_SECRET" envDefault:"dontexposethis"`
	JWTTTL             time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BrevoAPIKey        string        `env:"BREVO_API_KEY"`
	SenderName         string        `env:"SENDER_NAME" envDefault:"Sushi Naruto"`
	SenderEmail        string        `env:"SENDER_EMAIL" envDefault:"no-reply@sushinaruto.ch"`
	OpsEmail           string        `env:"OPS_EMAIL" envDefault:"orders@sushinaruto.ch"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ENV JWT_SECRET must be set")
	}

	address := flag.String("a", cfg.Address, "{Host:port} for server")
	loglevel := flag.String("l", cfg.LogLevel, "Log level for server")
	databaseConnection := flag.String("d", cfg.DatabaseConnection, "Database connection string")
	jwtTTL := flag.Duration("t", cfg.JWTTTL, "TTL for JWT token(e.g. 24h; 30m )")
	brevoKey := flag.String("k", cfg.BrevoAPIKey, "Brevo API key for transactional email")
	opsEmail := flag.String("o", cfg.OpsEmail, "Address notified about new orders and messages")

	flag.Parse()

	cfg.Address = *address
	cfg.LogLevel = *loglevel
	cfg.DatabaseConnection = *databaseConnection
	cfg.JWTTTL = *jwtTTL
	cfg.BrevoAPIKey = *brevoKey
	cfg.OpsEmail = *opsEmail

	return cfg, nil
}
