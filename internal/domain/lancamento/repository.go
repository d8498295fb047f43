package lancamento

import "context"

// Repository define as operações de persistência para lançamentos
type Repository interface {
	Create(ctx context.Context, l *Lancamento) error
	FindByID(ctx context.Context, id int64) (*Lancamento, error)
	List(ctx context.Context) ([]*Lancamento, error)
	// Update substitui todos os campos mutáveis do registro e renova o
	// updated_at
	Update(ctx context.Context, l *Lancamento) error
	// UpdateStatus altera apenas o status_pagamento e o updated_at
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
