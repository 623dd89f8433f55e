package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config armazena todas as configurações do aplicativo GoCollect.
// Os campos são lidos de variáveis de ambiente (o .env é carregado antes pelo cmd).
type Config struct {
	// Geral
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL    string        `env:"DATABASE_URL,required,notEmpty"`
	DBTimeout      time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`

	// Redis (rate limiting)
	RedisAddr            string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitPeriod      time.Duration `env:"RATE_LIMIT_PERIOD" envDefault:"1m"`

	// Segurança (JWT + login administrativo)
	JWTSecretKey       string        `env:"JWT_SECRET_KEY,required,notEmpty"`
	TokenExpiry        time.Duration `env:"JWT_EXPIRY" envDefault:"60m"`
	AdminEmail         string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash  string        `env:"ADMIN_PASSWORD_HASH"` // hash bcrypt
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Catálogo de produtos (resolução de SKU)
	CatalogURL     string        `env:"CATALOG_URL"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"3s"`

	// Regras da coleção
	CollectionLimit int           `env:"COLLECTION_LIMIT" envDefault:"0"` // 0 = sem limite
	CleanupDaysOld  int           `env:"CLEANUP_DAYS_OLD" envDefault:"30"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"` // 0 desativa o worker
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Variáveis obrigatórias ausentes ou valores mal formados retornam erro.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}
	if cfg.CollectionLimit < 0 {
		return nil, fmt.Errorf("COLLECTION_LIMIT não pode ser negativo: %d", cfg.CollectionLimit)
	}
	if cfg.CleanupDaysOld <= 0 {
		cfg.CleanupDaysOld = 30
	}
	return cfg, nil
}

// IsProduction indica se o serviço roda em produção.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
