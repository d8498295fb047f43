package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config concentra toda a configuração da aplicação. É construída uma única
// vez na inicialização e injetada nos componentes que precisam dela.
type Config struct {
	Ambiente   string
	LogLevel   string
	ServerPort string

	Database DatabaseConfig
	JWT      JWTConfig

	// UploadDir é o diretório raiz onde os arquivos enviados são gravados
	// e de onde são servidos em /uploads
	UploadDir string
}

// DatabaseConfig contém as configurações de conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// JWTConfig contém as configurações do serviço de tokens
type JWTConfig struct {
	SecretKey string
	Expiracao time.Duration
}

// Load monta a configuração a partir de variáveis de ambiente, aplicando
// valores padrão quando ausentes. O segredo do JWT é obrigatório.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "300"))

	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("variável JWT_SECRET_KEY não configurada")
	}

	// Expiração nominal de 600 minutos, agora efetivamente embutida e
	// verificada na claim exp
	expMinutos, err := strconv.Atoi(getEnv("JWT_EXPIRACAO_MINUTOS", "600"))
	if err != nil || expMinutos <= 0 {
		expMinutos = 600
	}

	return &Config{
		Ambiente:   getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ServerPort: getEnv("SERVER_PORT", "8000"),
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            port,
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Database:        getEnv("DB_NAME", "financeiro"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  int32(maxConns),
			MinConnections:  int32(minConns),
			MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey: secretKey,
			Expiracao: time.Duration(expMinutos) * time.Minute,
		},
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}, nil
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// MigrationURL retorna a URL do banco no formato aceito pelo golang-migrate
func (c *DatabaseConfig) MigrationURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
