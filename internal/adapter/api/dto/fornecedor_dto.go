package dto

import "github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"

// FornecedorRequest representa a estrutura de dados para criação/atualização de fornecedor
type FornecedorRequest struct {
	NomeEmpresa            string `json:"nome_empresa" binding:"required"`
	ListaCNPJs             string `json:"lista_cnpjs"`
	ListaContratos         string `json:"lista_contratos"`
	ListaCentroCusto       string `json:"lista_centro_custos"`
	PadraoDescricaoServico string `json:"padrao_descricao_servico"`
	PadraoServicoProtheus  string `json:"padrao_servico_protheus"`
}

// FornecedorResponse representa a estrutura de resposta para fornecedor
type FornecedorResponse struct {
	ID                     int64  `json:"id"`
	NomeEmpresa            string `json:"nome_empresa"`
	ListaCNPJs             string `json:"lista_cnpjs"`
	ListaContratos         string `json:"lista_contratos"`
	ListaCentroCusto       string `json:"lista_centro_custos"`
	PadraoDescricaoServico string `json:"padrao_descricao_servico,omitempty"`
	PadraoServicoProtheus  string `json:"padrao_servico_protheus,omitempty"`
}

// FornecedorAgrupadoResponse é a linha da visão agrupada do dashboard:
// o fornecedor com o subconjunto de lançamentos que satisfaz o filtro ativo
type FornecedorAgrupadoResponse struct {
	FornecedorResponse
	Lancamentos []LancamentoResponse `json:"lancamentos"`
}

// ToFornecedorResponse converte um modelo de domínio em uma resposta DTO
func ToFornecedorResponse(f *fornecedor.Fornecedor) FornecedorResponse {
	return FornecedorResponse{
		ID:                     f.ID,
		NomeEmpresa:            f.NomeEmpresa,
		ListaCNPJs:             f.ListaCNPJs,
		ListaContratos:         f.ListaContratos,
		ListaCentroCusto:       f.ListaCentroCusto,
		PadraoDescricaoServico: f.PadraoDescricaoServico,
		PadraoServicoProtheus:  f.PadraoServicoProtheus,
	}
}

// ToFornecedorListResponse converte uma lista de fornecedores para o formato de resposta
func ToFornecedorListResponse(fornecedores []*fornecedor.Fornecedor) []FornecedorResponse {
	resposta := make([]FornecedorResponse, len(fornecedores))
	for i, f := range fornecedores {
		resposta[i] = ToFornecedorResponse(f)
	}
	return resposta
}

// ToFornecedorAgrupadoListResponse converte o resultado da agregação para o
// formato de resposta, preservando em cada fornecedor apenas os lançamentos
// filtrados
func ToFornecedorAgrupadoListResponse(grupos []*fornecedor.FornecedorComLancamentos) []FornecedorAgrupadoResponse {
	resposta := make([]FornecedorAgrupadoResponse, len(grupos))
	for i, g := range grupos {
		item := FornecedorAgrupadoResponse{
			FornecedorResponse: ToFornecedorResponse(&g.Fornecedor),
			Lancamentos:        make([]LancamentoResponse, len(g.Lancamentos)),
		}
		for j, l := range g.Lancamentos {
			item.Lancamentos[j] = ToLancamentoResponse(l)
		}
		resposta[i] = item
	}
	return resposta
}
