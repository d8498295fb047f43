package dto

import (
	"time"

	"github.com/hugohenrick/controle-financeiro/internal/domain/lancamento"
)

// LancamentoRequest representa a estrutura de dados para criação/substituição
// de lançamento. As datas trafegam como texto no formato aaaa-mm-dd.
type LancamentoRequest struct {
	FornecedorID     int64   `json:"fornecedor_id" binding:"required"`
	FilialID         int64   `json:"filial_id" binding:"required"`
	CnpjUsado        string  `json:"cnpj_usado" binding:"required"`
	ContratoUsado    string  `json:"contrato_usado" binding:"required"`
	CentroCustoUsado string  `json:"centro_custo_usado" binding:"required"`
	NumeroNota       string  `json:"numero_nota" binding:"required"`
	Serie            string  `json:"serie"`
	Valor            float64 `json:"valor" binding:"required,gt=0"`
	DataEmissao      string  `json:"data_emissao" binding:"required"`
	DataVencimento   string  `json:"data_vencimento" binding:"required"`
	DataRecebimento  string  `json:"data_recebimento"`
	DescricaoServico string  `json:"descricao_servico"`
	ServicoProtheus  string  `json:"servico_protheus"`
	NumeroMedicao    string  `json:"numero_medicao"`
	NumeroPedido     string  `json:"numero_pedido"`
	SolicitacaoFluig string  `json:"solicitacao_fluig"`
	Observacao       string  `json:"observacao"`
	StatusPagamento  string  `json:"status_pagamento"`
	ArquivoNota      string  `json:"arquivo_nota"`
	ArquivoBoleto    string  `json:"arquivo_boleto"`
}

// StatusUpdateRequest representa a atualização parcial de status
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// LancamentoResponse representa a estrutura de resposta para lançamento
type LancamentoResponse struct {
	ID               int64     `json:"id"`
	FornecedorID     int64     `json:"fornecedor_id"`
	FilialID         int64     `json:"filial_id"`
	CnpjUsado        string    `json:"cnpj_usado"`
	ContratoUsado    string    `json:"contrato_usado"`
	CentroCustoUsado string    `json:"centro_custo_usado"`
	NumeroNota       string    `json:"numero_nota"`
	Serie            string    `json:"serie"`
	Valor            float64   `json:"valor"`
	DataEmissao      string    `json:"data_emissao"`
	DataVencimento   string    `json:"data_vencimento"`
	DataRecebimento  string    `json:"data_recebimento,omitempty"`
	DescricaoServico string    `json:"descricao_servico,omitempty"`
	ServicoProtheus  string    `json:"servico_protheus,omitempty"`
	NumeroMedicao    string    `json:"numero_medicao,omitempty"`
	NumeroPedido     string    `json:"numero_pedido,omitempty"`
	SolicitacaoFluig string    `json:"solicitacao_fluig,omitempty"`
	Observacao       string    `json:"observacao,omitempty"`
	StatusPagamento  string    `json:"status_pagamento"`
	ArquivoNota      string    `json:"arquivo_nota,omitempty"`
	ArquivoBoleto    string    `json:"arquivo_boleto,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToLancamento converte a requisição em um modelo de domínio, validando as
// datas e aplicando os padrões de série e status
func (r *LancamentoRequest) ToLancamento() (*lancamento.Lancamento, error) {
	dataEmissao, err := ParseData("data_emissao", r.DataEmissao)
	if err != nil {
		return nil, err
	}

	dataVencimento, err := ParseData("data_vencimento", r.DataVencimento)
	if err != nil {
		return nil, err
	}

	dataRecebimento, err := ParseDataOpcional("data_recebimento", r.DataRecebimento)
	if err != nil {
		return nil, err
	}

	l := &lancamento.Lancamento{
		FornecedorID:     r.FornecedorID,
		FilialID:         r.FilialID,
		CnpjUsado:        r.CnpjUsado,
		ContratoUsado:    r.ContratoUsado,
		CentroCustoUsado: r.CentroCustoUsado,
		NumeroNota:       r.NumeroNota,
		Serie:            r.Serie,
		Valor:            r.Valor,
		DataEmissao:      dataEmissao,
		DataVencimento:   dataVencimento,
		DataRecebimento:  dataRecebimento,
		DescricaoServico: r.DescricaoServico,
		ServicoProtheus:  r.ServicoProtheus,
		NumeroMedicao:    r.NumeroMedicao,
		NumeroPedido:     r.NumeroPedido,
		SolicitacaoFluig: r.SolicitacaoFluig,
		Observacao:       r.Observacao,
		StatusPagamento:  r.StatusPagamento,
		ArquivoNota:      r.ArquivoNota,
		ArquivoBoleto:    r.ArquivoBoleto,
	}

	l.AplicarPadroes()

	if err := l.Validar(); err != nil {
		return nil, err
	}

	return l, nil
}

// ToLancamentoResponse converte um modelo de domínio em uma resposta DTO
func ToLancamentoResponse(l *lancamento.Lancamento) LancamentoResponse {
	return LancamentoResponse{
		ID:               l.ID,
		FornecedorID:     l.FornecedorID,
		FilialID:         l.FilialID,
		CnpjUsado:        l.CnpjUsado,
		ContratoUsado:    l.ContratoUsado,
		CentroCustoUsado: l.CentroCustoUsado,
		NumeroNota:       l.NumeroNota,
		Serie:            l.Serie,
		Valor:            l.Valor,
		DataEmissao:      FormatarData(l.DataEmissao),
		DataVencimento:   FormatarData(l.DataVencimento),
		DataRecebimento:  FormatarDataOpcional(l.DataRecebimento),
		DescricaoServico: l.DescricaoServico,
		ServicoProtheus:  l.ServicoProtheus,
		NumeroMedicao:    l.NumeroMedicao,
		NumeroPedido:     l.NumeroPedido,
		SolicitacaoFluig: l.SolicitacaoFluig,
		Observacao:       l.Observacao,
		StatusPagamento:  l.StatusPagamento,
		ArquivoNota:      l.ArquivoNota,
		ArquivoBoleto:    l.ArquivoBoleto,
		UpdatedAt:        l.UpdatedAt,
	}
}

// ToLancamentoListResponse converte uma lista de lançamentos para o formato de resposta
func ToLancamentoListResponse(lancamentos []*lancamento.Lancamento) []LancamentoResponse {
	resposta := make([]LancamentoResponse, len(lancamentos))
	for i, l := range lancamentos {
		resposta[i] = ToLancamentoResponse(l)
	}
	return resposta
}
