package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"
	"github.com/hugohenrick/controle-financeiro/internal/domain/lancamento"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrFornecedorNaoEncontrado    = errors.New("fornecedor não encontrado")
	ErrFornecedorPossuiLancamento = errors.New("fornecedor possui lançamentos vinculados")
)

// PostgresFornecedorRepository implementa a interface fornecedor.Repository usando PostgreSQL
type PostgresFornecedorRepository struct {
	db *database.PostgresDB
}

// NewPostgresFornecedorRepository cria uma nova instância de PostgresFornecedorRepository
func NewPostgresFornecedorRepository(db *database.PostgresDB) *PostgresFornecedorRepository {
	return &PostgresFornecedorRepository{db: db}
}

// Create implementa fornecedor.Repository.Create
func (r *PostgresFornecedorRepository) Create(ctx context.Context, f *fornecedor.Fornecedor) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO fornecedores (
			nome_empresa, lista_cnpjs, lista_contratos, lista_centro_custos,
			padrao_descricao_servico, padrao_servico_protheus
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = conn.QueryRow(ctx, query,
		f.NomeEmpresa,
		f.ListaCNPJs,
		f.ListaContratos,
		f.ListaCentroCusto,
		f.PadraoDescricaoServico,
		f.PadraoServicoProtheus,
	).Scan(&f.ID)

	if err != nil {
		return fmt.Errorf("falha ao inserir fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa fornecedor.Repository.FindByID
func (r *PostgresFornecedorRepository) FindByID(ctx context.Context, id int64) (*fornecedor.Fornecedor, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, nome_empresa, lista_cnpjs, lista_contratos, lista_centro_custos,
			padrao_descricao_servico, padrao_servico_protheus
		FROM fornecedores WHERE id = $1
	`

	f := &fornecedor.Fornecedor{}
	err = conn.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.NomeEmpresa,
		&f.ListaCNPJs,
		&f.ListaContratos,
		&f.ListaCentroCusto,
		&f.PadraoDescricaoServico,
		&f.PadraoServicoProtheus,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFornecedorNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar fornecedor: %w", err)
	}

	return f, nil
}

// List implementa fornecedor.Repository.List
func (r *PostgresFornecedorRepository) List(ctx context.Context) ([]*fornecedor.Fornecedor, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, nome_empresa, lista_cnpjs, lista_contratos, lista_centro_custos,
			padrao_descricao_servico, padrao_servico_protheus
		FROM fornecedores ORDER BY id
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	var fornecedores []*fornecedor.Fornecedor
	for rows.Next() {
		f := &fornecedor.Fornecedor{}
		err := rows.Scan(
			&f.ID,
			&f.NomeEmpresa,
			&f.ListaCNPJs,
			&f.ListaContratos,
			&f.ListaCentroCusto,
			&f.PadraoDescricaoServico,
			&f.PadraoServicoProtheus,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler fornecedor: %w", err)
		}
		fornecedores = append(fornecedores, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return fornecedores, nil
}

// Update implementa fornecedor.Repository.Update
func (r *PostgresFornecedorRepository) Update(ctx context.Context, f *fornecedor.Fornecedor) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE fornecedores
		SET nome_empresa = $1,
			lista_cnpjs = $2,
			lista_contratos = $3,
			lista_centro_custos = $4,
			padrao_descricao_servico = $5,
			padrao_servico_protheus = $6
		WHERE id = $7
	`

	result, err := conn.Exec(ctx, query,
		f.NomeEmpresa,
		f.ListaCNPJs,
		f.ListaContratos,
		f.ListaCentroCusto,
		f.PadraoDescricaoServico,
		f.PadraoServicoProtheus,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFornecedorNaoEncontrado
	}

	return nil
}

// Delete implementa fornecedor.Repository.Delete. A exclusão é rejeitada
// quando ainda existem lançamentos vinculados (FK ON DELETE RESTRICT).
func (r *PostgresFornecedorRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM fornecedores WHERE id = $1", id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key violation
			return ErrFornecedorPossuiLancamento
		}
		return fmt.Errorf("falha ao excluir fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFornecedorNaoEncontrado
	}

	return nil
}

// ListarComLancamentos implementa fornecedor.Repository.ListarComLancamentos.
// Uma única consulta com INNER JOIN garante que fornecedores sem lançamento
// compatível fiquem de fora, e o agrupamento carrega para cada fornecedor
// somente as linhas filtradas pelo JOIN, nunca todos os seus lançamentos.
func (r *PostgresFornecedorRepository) ListarComLancamentos(ctx context.Context, filtro fornecedor.FiltroDashboard) ([]*fornecedor.FornecedorComLancamentos, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			f.id, f.nome_empresa, f.lista_cnpjs, f.lista_contratos, f.lista_centro_custos,
			f.padrao_descricao_servico, f.padrao_servico_protheus,
			l.id, l.fornecedor_id, l.filial_id,
			l.cnpj_usado, l.contrato_usado, l.centro_custo_usado,
			l.numero_nota, l.serie, l.valor,
			l.data_emissao, l.data_vencimento, l.data_recebimento,
			l.descricao_servico, l.servico_protheus,
			l.numero_medicao, l.numero_pedido, l.solicitacao_fluig, l.observacao,
			l.status_pagamento, l.arquivo_nota, l.arquivo_boleto, l.updated_at
		FROM fornecedores f
		INNER JOIN lancamentos l ON l.fornecedor_id = f.id
	`)

	var condicoes []string
	var args []interface{}

	if filtro.FilialID != nil {
		args = append(args, *filtro.FilialID)
		condicoes = append(condicoes, "l.filial_id = $"+strconv.Itoa(len(args)))
	}

	if filtro.Mes != nil && filtro.Ano != nil {
		args = append(args, *filtro.Mes)
		condicoes = append(condicoes, "EXTRACT(MONTH FROM l.data_vencimento) = $"+strconv.Itoa(len(args)))
		args = append(args, *filtro.Ano)
		condicoes = append(condicoes, "EXTRACT(YEAR FROM l.data_vencimento) = $"+strconv.Itoa(len(args)))
	}

	if len(condicoes) > 0 {
		sb.WriteString(" WHERE " + strings.Join(condicoes, " AND "))
	}

	sb.WriteString(" ORDER BY f.id, l.id")

	rows, err := conn.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar dados agrupados: %w", err)
	}
	defer rows.Close()

	var linhas []fornecedorLancamentoLinha
	for rows.Next() {
		var linha fornecedorLancamentoLinha
		f := &linha.fornecedor
		l := &linha.lancamento
		err := rows.Scan(
			&f.ID, &f.NomeEmpresa, &f.ListaCNPJs, &f.ListaContratos, &f.ListaCentroCusto,
			&f.PadraoDescricaoServico, &f.PadraoServicoProtheus,
			&l.ID, &l.FornecedorID, &l.FilialID,
			&l.CnpjUsado, &l.ContratoUsado, &l.CentroCustoUsado,
			&l.NumeroNota, &l.Serie, &l.Valor,
			&l.DataEmissao, &l.DataVencimento, &l.DataRecebimento,
			&l.DescricaoServico, &l.ServicoProtheus,
			&l.NumeroMedicao, &l.NumeroPedido, &l.SolicitacaoFluig, &l.Observacao,
			&l.StatusPagamento, &l.ArquivoNota, &l.ArquivoBoleto, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha agrupada: %w", err)
		}
		linhas = append(linhas, linha)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return agruparPorFornecedor(linhas), nil
}

// fornecedorLancamentoLinha é uma linha do JOIN fornecedor × lançamento
type fornecedorLancamentoLinha struct {
	fornecedor fornecedor.Fornecedor
	lancamento lancamento.Lancamento
}

// agruparPorFornecedor reagrupa as linhas do JOIN preservando a ordem e
// anexando a cada fornecedor exatamente os lançamentos presentes nas linhas
func agruparPorFornecedor(linhas []fornecedorLancamentoLinha) []*fornecedor.FornecedorComLancamentos {
	var resultado []*fornecedor.FornecedorComLancamentos
	indice := make(map[int64]*fornecedor.FornecedorComLancamentos)

	for i := range linhas {
		linha := &linhas[i]
		grupo, existe := indice[linha.fornecedor.ID]
		if !existe {
			grupo = &fornecedor.FornecedorComLancamentos{Fornecedor: linha.fornecedor}
			indice[linha.fornecedor.ID] = grupo
			resultado = append(resultado, grupo)
		}
		l := linha.lancamento
		grupo.Lancamentos = append(grupo.Lancamentos, &l)
	}

	return resultado
}
