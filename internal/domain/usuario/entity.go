package usuario

import (
	"errors"
	"time"
)

var (
	ErrUsernameVazio = errors.New("username não pode ser vazio")
	ErrSenhaVazia    = errors.New("senha não pode ser vazia")
)

// Usuario representa um usuário do sistema. Serve apenas como identidade
// para autenticação; não possui vínculo de propriedade com outras entidades.
type Usuario struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // nunca retornado nas respostas JSON
	NomeCompleto string    `json:"nome_completo"`
	CPF          string    `json:"cpf"`
	Setor        string    `json:"setor"`
	Cargo        string    `json:"cargo"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUsuario cria um novo usuário já com a senha em formato hash
func NewUsuario(username, passwordHash, nomeCompleto, cpf, setor, cargo string) (*Usuario, error) {
	if username == "" {
		return nil, ErrUsernameVazio
	}
	if passwordHash == "" {
		return nil, ErrSenhaVazia
	}

	return &Usuario{
		Username:     username,
		PasswordHash: passwordHash,
		NomeCompleto: nomeCompleto,
		CPF:          cpf,
		Setor:        setor,
		Cargo:        cargo,
		CreatedAt:    time.Now(),
	}, nil
}
