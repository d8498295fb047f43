package dto

import "github.com/hugohenrick/controle-financeiro/internal/domain/filial"

// FilialRequest representa a estrutura de dados para criação/atualização de filial
type FilialRequest struct {
	Codigo       string `json:"codigo" binding:"required"`
	NomeFantasia string `json:"nome_fantasia" binding:"required"`
}

// FilialResponse representa a estrutura de resposta para filial
type FilialResponse struct {
	ID           int64  `json:"id"`
	Codigo       string `json:"codigo"`
	NomeFantasia string `json:"nome_fantasia"`
}

// ToFilialResponse converte um modelo de domínio em uma resposta DTO
func ToFilialResponse(f *filial.Filial) FilialResponse {
	return FilialResponse{
		ID:           f.ID,
		Codigo:       f.Codigo,
		NomeFantasia: f.NomeFantasia,
	}
}

// ToFilialListResponse converte uma lista de filiais para o formato de resposta
func ToFilialListResponse(filiais []*filial.Filial) []FilialResponse {
	resposta := make([]FilialResponse, len(filiais))
	for i, f := range filiais {
		resposta[i] = ToFilialResponse(f)
	}
	return resposta
}
