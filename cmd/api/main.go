package main

import (
	"log"

	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
	"github.com/hugohenrick/controle-financeiro/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Ambiente, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer zapLogger.Sync()

	// Criar aplicação
	app, err := NewApp(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Erro ao inicializar aplicação", zap.Error(err))
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		zapLogger.Fatal("Erro ao iniciar servidor", zap.Error(err))
	}
}
