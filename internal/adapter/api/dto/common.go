package dto

import (
	"fmt"
	"time"
)

// FormatoData é o formato de data usado em todo o corpo das requisições e
// respostas (aaaa-mm-dd)
const FormatoData = "2006-01-02"

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// ParseData converte uma data no formato aaaa-mm-dd
func ParseData(campo, valor string) (time.Time, error) {
	t, err := time.Parse(FormatoData, valor)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: data inválida %q", campo, valor)
	}
	return t, nil
}

// ParseDataOpcional converte uma data opcional; vazio resulta em nil
func ParseDataOpcional(campo, valor string) (*time.Time, error) {
	if valor == "" {
		return nil, nil
	}
	t, err := ParseData(campo, valor)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatarData serializa uma data no formato aaaa-mm-dd
func FormatarData(t time.Time) string {
	return t.Format(FormatoData)
}

// FormatarDataOpcional serializa uma data opcional; nil resulta em vazio
func FormatarDataOpcional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatarData(*t)
}
