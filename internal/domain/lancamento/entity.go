package lancamento

import (
	"errors"
	"time"
)

var (
	ErrFornecedorObrigatorio = errors.New("fornecedor do lançamento é obrigatório")
	ErrFilialObrigatoria     = errors.New("filial do lançamento é obrigatória")
	ErrNumeroNotaVazio       = errors.New("número da nota não pode ser vazio")
	ErrValorInvalido         = errors.New("valor do lançamento deve ser maior que zero")
	ErrVencimentoObrigatorio = errors.New("data de vencimento é obrigatória")
)

const (
	// SeriePadrao é aplicada quando a série da nota não é informada
	SeriePadrao = "U"
	// StatusPendenteLancamento é o status inicial de todo lançamento
	StatusPendenteLancamento = "Pendente Lançamento"
)

// Lancamento representa uma nota fiscal emitida por um fornecedor contra uma
// filial, acompanhada ao longo do seu ciclo de pagamento.
//
// CnpjUsado, ContratoUsado e CentroCustoUsado são cópias desnormalizadas dos
// valores escolhidos nas listas do fornecedor no momento da criação; são
// texto livre e não são validados contra as listas.
type Lancamento struct {
	ID           int64 `json:"id"`
	FornecedorID int64 `json:"fornecedor_id"`
	FilialID     int64 `json:"filial_id"`

	// Identificação selecionada
	CnpjUsado        string `json:"cnpj_usado"`
	ContratoUsado    string `json:"contrato_usado"`
	CentroCustoUsado string `json:"centro_custo_usado"`

	// Dados da nota
	NumeroNota string  `json:"numero_nota"`
	Serie      string  `json:"serie"`
	Valor      float64 `json:"valor"`

	// Datas
	DataEmissao     time.Time  `json:"data_emissao"`
	DataVencimento  time.Time  `json:"data_vencimento"`
	DataRecebimento *time.Time `json:"data_recebimento,omitempty"`

	// Detalhes
	DescricaoServico string `json:"descricao_servico,omitempty"`
	ServicoProtheus  string `json:"servico_protheus,omitempty"`

	// Controle interno (T.I.)
	NumeroMedicao    string `json:"numero_medicao,omitempty"`
	NumeroPedido     string `json:"numero_pedido,omitempty"`
	SolicitacaoFluig string `json:"solicitacao_fluig,omitempty"`
	Observacao       string `json:"observacao,omitempty"`

	// Status e arquivos
	StatusPagamento string `json:"status_pagamento"`
	ArquivoNota     string `json:"arquivo_nota,omitempty"`
	ArquivoBoleto   string `json:"arquivo_boleto,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// AplicarPadroes preenche série e status quando não informados
func (l *Lancamento) AplicarPadroes() {
	if l.Serie == "" {
		l.Serie = SeriePadrao
	}
	if l.StatusPagamento == "" {
		l.StatusPagamento = StatusPendenteLancamento
	}
}

// Validar verifica os campos obrigatórios do lançamento
func (l *Lancamento) Validar() error {
	if l.FornecedorID == 0 {
		return ErrFornecedorObrigatorio
	}
	if l.FilialID == 0 {
		return ErrFilialObrigatoria
	}
	if l.NumeroNota == "" {
		return ErrNumeroNotaVazio
	}
	if l.Valor <= 0 {
		return ErrValorInvalido
	}
	if l.DataVencimento.IsZero() {
		return ErrVencimentoObrigatorio
	}
	return nil
}
