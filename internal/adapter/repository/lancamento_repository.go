package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/controle-financeiro/internal/domain/lancamento"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrLancamentoNaoEncontrado = errors.New("lançamento não encontrado")
	ErrReferenciaInvalida      = errors.New("fornecedor ou filial inexistente")
)

// PostgresLancamentoRepository implementa a interface lancamento.Repository usando PostgreSQL
type PostgresLancamentoRepository struct {
	db *database.PostgresDB
}

// NewPostgresLancamentoRepository cria uma nova instância de PostgresLancamentoRepository
func NewPostgresLancamentoRepository(db *database.PostgresDB) *PostgresLancamentoRepository {
	return &PostgresLancamentoRepository{db: db}
}

const lancamentoColunas = `
	id, fornecedor_id, filial_id,
	cnpj_usado, contrato_usado, centro_custo_usado,
	numero_nota, serie, valor,
	data_emissao, data_vencimento, data_recebimento,
	descricao_servico, servico_protheus,
	numero_medicao, numero_pedido, solicitacao_fluig, observacao,
	status_pagamento, arquivo_nota, arquivo_boleto, updated_at
`

// Create implementa lancamento.Repository.Create
func (r *PostgresLancamentoRepository) Create(ctx context.Context, l *lancamento.Lancamento) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	l.UpdatedAt = time.Now()

	query := `
		INSERT INTO lancamentos (
			fornecedor_id, filial_id,
			cnpj_usado, contrato_usado, centro_custo_usado,
			numero_nota, serie, valor,
			data_emissao, data_vencimento, data_recebimento,
			descricao_servico, servico_protheus,
			numero_medicao, numero_pedido, solicitacao_fluig, observacao,
			status_pagamento, arquivo_nota, arquivo_boleto, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
		RETURNING id
	`

	err = conn.QueryRow(ctx, query,
		l.FornecedorID,
		l.FilialID,
		l.CnpjUsado,
		l.ContratoUsado,
		l.CentroCustoUsado,
		l.NumeroNota,
		l.Serie,
		l.Valor,
		l.DataEmissao,
		l.DataVencimento,
		l.DataRecebimento,
		l.DescricaoServico,
		l.ServicoProtheus,
		l.NumeroMedicao,
		l.NumeroPedido,
		l.SolicitacaoFluig,
		l.Observacao,
		l.StatusPagamento,
		l.ArquivoNota,
		l.ArquivoBoleto,
		l.UpdatedAt,
	).Scan(&l.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key violation
			return ErrReferenciaInvalida
		}
		return fmt.Errorf("falha ao inserir lançamento: %w", err)
	}

	return nil
}

// FindByID implementa lancamento.Repository.FindByID
func (r *PostgresLancamentoRepository) FindByID(ctx context.Context, id int64) (*lancamento.Lancamento, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	l := &lancamento.Lancamento{}
	err = conn.QueryRow(ctx, "SELECT "+lancamentoColunas+" FROM lancamentos WHERE id = $1", id).Scan(
		&l.ID, &l.FornecedorID, &l.FilialID,
		&l.CnpjUsado, &l.ContratoUsado, &l.CentroCustoUsado,
		&l.NumeroNota, &l.Serie, &l.Valor,
		&l.DataEmissao, &l.DataVencimento, &l.DataRecebimento,
		&l.DescricaoServico, &l.ServicoProtheus,
		&l.NumeroMedicao, &l.NumeroPedido, &l.SolicitacaoFluig, &l.Observacao,
		&l.StatusPagamento, &l.ArquivoNota, &l.ArquivoBoleto, &l.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLancamentoNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar lançamento: %w", err)
	}

	return l, nil
}

// List implementa lancamento.Repository.List
func (r *PostgresLancamentoRepository) List(ctx context.Context) ([]*lancamento.Lancamento, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT "+lancamentoColunas+" FROM lancamentos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos: %w", err)
	}
	defer rows.Close()

	var lancamentos []*lancamento.Lancamento
	for rows.Next() {
		l := &lancamento.Lancamento{}
		err := rows.Scan(
			&l.ID, &l.FornecedorID, &l.FilialID,
			&l.CnpjUsado, &l.ContratoUsado, &l.CentroCustoUsado,
			&l.NumeroNota, &l.Serie, &l.Valor,
			&l.DataEmissao, &l.DataVencimento, &l.DataRecebimento,
			&l.DescricaoServico, &l.ServicoProtheus,
			&l.NumeroMedicao, &l.NumeroPedido, &l.SolicitacaoFluig, &l.Observacao,
			&l.StatusPagamento, &l.ArquivoNota, &l.ArquivoBoleto, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler lançamento: %w", err)
		}
		lancamentos = append(lancamentos, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return lancamentos, nil
}

// Update implementa lancamento.Repository.Update: substituição integral de
// todos os campos mutáveis, com renovação do updated_at. Cada campo aparece
// explicitamente para que o compilador acuse omissões.
func (r *PostgresLancamentoRepository) Update(ctx context.Context, l *lancamento.Lancamento) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	l.UpdatedAt = time.Now()

	query := `
		UPDATE lancamentos
		SET fornecedor_id = $1,
			filial_id = $2,
			cnpj_usado = $3,
			contrato_usado = $4,
			centro_custo_usado = $5,
			numero_nota = $6,
			serie = $7,
			valor = $8,
			data_emissao = $9,
			data_vencimento = $10,
			data_recebimento = $11,
			descricao_servico = $12,
			servico_protheus = $13,
			numero_medicao = $14,
			numero_pedido = $15,
			solicitacao_fluig = $16,
			observacao = $17,
			status_pagamento = $18,
			arquivo_nota = $19,
			arquivo_boleto = $20,
			updated_at = $21
		WHERE id = $22
	`

	result, err := conn.Exec(ctx, query,
		l.FornecedorID,
		l.FilialID,
		l.CnpjUsado,
		l.ContratoUsado,
		l.CentroCustoUsado,
		l.NumeroNota,
		l.Serie,
		l.Valor,
		l.DataEmissao,
		l.DataVencimento,
		l.DataRecebimento,
		l.DescricaoServico,
		l.ServicoProtheus,
		l.NumeroMedicao,
		l.NumeroPedido,
		l.SolicitacaoFluig,
		l.Observacao,
		l.StatusPagamento,
		l.ArquivoNota,
		l.ArquivoBoleto,
		l.UpdatedAt,
		l.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrReferenciaInvalida
		}
		return fmt.Errorf("falha ao atualizar lançamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLancamentoNaoEncontrado
	}

	return nil
}

// UpdateStatus implementa lancamento.Repository.UpdateStatus: altera apenas
// o status_pagamento e o updated_at
func (r *PostgresLancamentoRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE lancamentos SET status_pagamento = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do lançamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLancamentoNaoEncontrado
	}

	return nil
}

// Delete implementa lancamento.Repository.Delete
func (r *PostgresLancamentoRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM lancamentos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao excluir lançamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLancamentoNaoEncontrado
	}

	return nil
}
