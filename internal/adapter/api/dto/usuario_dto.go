package dto

import (
	"time"

	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
)

// UsuarioRequest representa a estrutura de dados para criação/atualização de usuário
type UsuarioRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	NomeCompleto string `json:"nome_completo"`
	CPF          string `json:"cpf"`
	Setor        string `json:"setor"`
	Cargo        string `json:"cargo"`
}

// UsuarioResponse representa a estrutura de resposta para usuário.
// O hash da senha nunca é exposto.
type UsuarioResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	NomeCompleto string    `json:"nome_completo"`
	CPF          string    `json:"cpf"`
	Setor        string    `json:"setor"`
	Cargo        string    `json:"cargo"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUsuarioResponse converte um modelo de domínio em uma resposta DTO
func ToUsuarioResponse(u *usuario.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:           u.ID,
		Username:     u.Username,
		NomeCompleto: u.NomeCompleto,
		CPF:          u.CPF,
		Setor:        u.Setor,
		Cargo:        u.Cargo,
		CreatedAt:    u.CreatedAt,
	}
}

// ToUsuarioListResponse converte uma lista de usuários para o formato de resposta
func ToUsuarioListResponse(usuarios []*usuario.Usuario) []UsuarioResponse {
	resposta := make([]UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		resposta[i] = ToUsuarioResponse(u)
	}
	return resposta
}
