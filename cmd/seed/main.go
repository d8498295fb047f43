package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/filial"
	"github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/hugohenrick/controle-financeiro/pkg/auth"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// Popula o banco com as filiais e fornecedores de teste e garante o usuário
// administrador. Os dados de teste só são criados quando ainda não existem
// filiais; o admin é sempre recriado para garantir a senha configurada.
func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seedDadosTeste(ctx, db); err != nil {
		log.Fatalf("Erro ao criar dados de teste: %v", err)
	}

	if err := resetarAdmin(ctx, db); err != nil {
		log.Fatalf("Erro ao criar usuário admin: %v", err)
	}

	log.Println("Seed concluído com sucesso!")
}

// seedDadosTeste cria as filiais e fornecedores iniciais em uma única
// transação, pulando quando o banco já tem filiais cadastradas
func seedDadosTeste(ctx context.Context, db *database.PostgresDB) error {
	existentes, err := repository.NewPostgresFilialRepository(db).List(ctx)
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		log.Println("Dados existem, pulando dados de teste")
		return nil
	}

	filiais := []*filial.Filial{
		{Codigo: "01", NomeFantasia: "MATRIZ"},
		{Codigo: "02", NomeFantasia: "FILIAL SP"},
	}

	fornecedores := []*fornecedor.Fornecedor{
		{
			NomeEmpresa:            "DELL COMPUTADORES",
			ListaCNPJs:             "00.123.456/0001-00",
			ListaContratos:         "CTR-DELL-2025",
			ListaCentroCusto:       "1.01 - TI INFRA",
			PadraoDescricaoServico: "LOCAÇÃO DE NOTEBOOKS",
			PadraoServicoProtheus:  "001 - LOCAÇÃO HARDWARE",
		},
		{
			NomeEmpresa:            "G7 TECNOLOGIA",
			ListaCNPJs:             "99.888.777/0001-11",
			ListaContratos:         "CTR-G7-DBA",
			ListaCentroCusto:       "1.05 - SISTEMAS",
			PadraoDescricaoServico: "DBA ORACLE E SUPORTE SIMPLIVITY",
			PadraoServicoProtheus:  "005 - SUPORTE BANCO DE DADOS",
		},
	}

	return db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, f := range filiais {
			_, err := tx.Exec(ctx,
				"INSERT INTO filiais (codigo, nome_fantasia) VALUES ($1, $2)",
				f.Codigo, f.NomeFantasia,
			)
			if err != nil {
				return err
			}
			log.Printf("Filial criada: %s - %s", f.Codigo, f.NomeFantasia)
		}

		for _, f := range fornecedores {
			_, err := tx.Exec(ctx, `
				INSERT INTO fornecedores (
					nome_empresa, lista_cnpjs, lista_contratos, lista_centro_custos,
					padrao_descricao_servico, padrao_servico_protheus
				) VALUES ($1, $2, $3, $4, $5, $6)`,
				f.NomeEmpresa, f.ListaCNPJs, f.ListaContratos, f.ListaCentroCusto,
				f.PadraoDescricaoServico, f.PadraoServicoProtheus,
			)
			if err != nil {
				return err
			}
			log.Printf("Fornecedor criado: %s", f.NomeEmpresa)
		}

		return nil
	})
}

// resetarAdmin remove o usuário admin existente e o recria com a senha da
// variável ADMIN_PASSWORD
func resetarAdmin(ctx context.Context, db *database.PostgresDB) error {
	usuarioRepo := repository.NewPostgresUsuarioRepository(db)

	senha := os.Getenv("ADMIN_PASSWORD")
	if senha == "" {
		senha = "admin123"
		log.Println("Aviso: ADMIN_PASSWORD não configurada, usando senha padrão")
	}

	existente, err := usuarioRepo.FindByUsername(ctx, "admin")
	if err != nil && !errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
		return err
	}
	if existente != nil {
		if err := usuarioRepo.Delete(ctx, existente.ID); err != nil {
			return err
		}
		log.Println("Admin antigo removido")
	}

	hash, err := auth.HashPassword(senha)
	if err != nil {
		return err
	}

	admin, err := usuario.NewUsuario("admin", hash, "Super Administrador", "000.000.000-00", "TI", "Gestor")
	if err != nil {
		return err
	}

	if err := usuarioRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Println("Usuário admin criado")
	return nil
}
