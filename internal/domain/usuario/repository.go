package usuario

import "context"

// Repository define as operações de persistência para usuários
type Repository interface {
	Create(ctx context.Context, u *Usuario) error
	FindByID(ctx context.Context, id int64) (*Usuario, error)
	FindByUsername(ctx context.Context, username string) (*Usuario, error)
	List(ctx context.Context) ([]*Usuario, error)
	Update(ctx context.Context, u *Usuario) error
	Delete(ctx context.Context, id int64) error
}
