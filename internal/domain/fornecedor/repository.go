package fornecedor

import (
	"context"

	"github.com/hugohenrick/controle-financeiro/internal/domain/lancamento"
)

// FiltroDashboard restringe os lançamentos anexados a cada fornecedor na
// visão agrupada. Mes e Ano andam juntos: ou ambos presentes, ou nenhum.
type FiltroDashboard struct {
	FilialID *int64
	Mes      *int
	Ano      *int
}

// FornecedorComLancamentos é a linha da visão agrupada: o fornecedor com
// exatamente o subconjunto de lançamentos que satisfaz o filtro
type FornecedorComLancamentos struct {
	Fornecedor
	Lancamentos []*lancamento.Lancamento `json:"lancamentos"`
}

// Repository define as operações de persistência para fornecedores
type Repository interface {
	Create(ctx context.Context, f *Fornecedor) error
	FindByID(ctx context.Context, id int64) (*Fornecedor, error)
	List(ctx context.Context) ([]*Fornecedor, error)
	Update(ctx context.Context, f *Fornecedor) error
	Delete(ctx context.Context, id int64) error
	// ListarComLancamentos retorna somente fornecedores com ao menos um
	// lançamento compatível com o filtro, cada um acompanhado apenas
	// desse subconjunto
	ListarComLancamentos(ctx context.Context, filtro FiltroDashboard) ([]*FornecedorComLancamentos, error)
}
