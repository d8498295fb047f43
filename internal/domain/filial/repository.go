package filial

import "context"

// Repository define as operações de persistência para filiais
type Repository interface {
	Create(ctx context.Context, f *Filial) error
	FindByID(ctx context.Context, id int64) (*Filial, error)
	List(ctx context.Context) ([]*Filial, error)
	Update(ctx context.Context, f *Filial) error
	Delete(ctx context.Context, id int64) error
}
