package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/controle-financeiro/internal/domain/filial"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrFilialNaoEncontrada    = errors.New("filial não encontrada")
	ErrFilialPossuiLancamento = errors.New("filial possui lançamentos vinculados")
)

// PostgresFilialRepository implementa a interface filial.Repository usando PostgreSQL
type PostgresFilialRepository struct {
	db *database.PostgresDB
}

// NewPostgresFilialRepository cria uma nova instância de PostgresFilialRepository
func NewPostgresFilialRepository(db *database.PostgresDB) *PostgresFilialRepository {
	return &PostgresFilialRepository{db: db}
}

// Create implementa filial.Repository.Create
func (r *PostgresFilialRepository) Create(ctx context.Context, f *filial.Filial) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = conn.QueryRow(ctx,
		"INSERT INTO filiais (codigo, nome_fantasia) VALUES ($1, $2) RETURNING id",
		f.Codigo, f.NomeFantasia,
	).Scan(&f.ID)

	if err != nil {
		return fmt.Errorf("falha ao inserir filial: %w", err)
	}

	return nil
}

// FindByID implementa filial.Repository.FindByID
func (r *PostgresFilialRepository) FindByID(ctx context.Context, id int64) (*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	f := &filial.Filial{}
	err = conn.QueryRow(ctx, "SELECT id, codigo, nome_fantasia FROM filiais WHERE id = $1", id).
		Scan(&f.ID, &f.Codigo, &f.NomeFantasia)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFilialNaoEncontrada
		}
		return nil, fmt.Errorf("falha ao buscar filial: %w", err)
	}

	return f, nil
}

// List implementa filial.Repository.List
func (r *PostgresFilialRepository) List(ctx context.Context) ([]*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT id, codigo, nome_fantasia FROM filiais ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar filiais: %w", err)
	}
	defer rows.Close()

	var filiais []*filial.Filial
	for rows.Next() {
		f := &filial.Filial{}
		if err := rows.Scan(&f.ID, &f.Codigo, &f.NomeFantasia); err != nil {
			return nil, fmt.Errorf("falha ao ler filial: %w", err)
		}
		filiais = append(filiais, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return filiais, nil
}

// Update implementa filial.Repository.Update
func (r *PostgresFilialRepository) Update(ctx context.Context, f *filial.Filial) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE filiais SET codigo = $1, nome_fantasia = $2 WHERE id = $3",
		f.Codigo, f.NomeFantasia, f.ID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar filial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFilialNaoEncontrada
	}

	return nil
}

// Delete implementa filial.Repository.Delete. A exclusão é rejeitada quando
// ainda existem lançamentos vinculados (FK ON DELETE RESTRICT).
func (r *PostgresFilialRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM filiais WHERE id = $1", id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key violation
			return ErrFilialPossuiLancamento
		}
		return fmt.Errorf("falha ao excluir filial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFilialNaoEncontrada
	}

	return nil
}
