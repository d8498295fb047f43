package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExigeSecretKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoadValoresPadrao(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")

	// getEnv trata vazio como ausente, então isolamos do ambiente da máquina
	for _, chave := range []string{"SERVER_PORT", "UPLOAD_DIR", "JWT_EXPIRACAO_MINUTOS", "DB_HOST", "DB_PORT"} {
		t.Setenv(chave, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 600*time.Minute, cfg.JWT.Expiracao)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadExpiracaoCustomizada(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("JWT_EXPIRACAO_MINUTOS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiracao)
}

func TestLoadExpiracaoInvalidaCaiNoPadrao(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("JWT_EXPIRACAO_MINUTOS", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 600*time.Minute, cfg.JWT.Expiracao)
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Database: "financeiro",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=financeiro sslmode=disable",
		cfg.ConnectionString(),
	)
	assert.Equal(t,
		"postgres://app:secret@db:5433/financeiro?sslmode=disable",
		cfg.MigrationURL(),
	)
}

func TestConnectionStringPrefereURL(t *testing.T) {
	cfg := DatabaseConfig{URL: "postgres://url-direta/db"}

	assert.Equal(t, "postgres://url-direta/db", cfg.ConnectionString())
	assert.Equal(t, "postgres://url-direta/db", cfg.MigrationURL())
}
