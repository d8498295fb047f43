package filial

import "errors"

var ErrCodigoVazio = errors.New("código da filial não pode ser vazio")

// Filial representa uma unidade interna da empresa contra a qual os
// lançamentos são emitidos
type Filial struct {
	ID           int64  `json:"id"`
	Codigo       string `json:"codigo"`
	NomeFantasia string `json:"nome_fantasia"`
}

// NewFilial cria uma nova filial
func NewFilial(codigo, nomeFantasia string) (*Filial, error) {
	if codigo == "" {
		return nil, ErrCodigoVazio
	}

	return &Filial{
		Codigo:       codigo,
		NomeFantasia: nomeFantasia,
	}, nil
}
