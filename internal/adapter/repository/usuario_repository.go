package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrUsuarioDuplicado     = errors.New("usuário com mesmo username já existe")
)

// PostgresUsuarioRepository implementa a interface usuario.Repository usando PostgreSQL
type PostgresUsuarioRepository struct {
	db *database.PostgresDB
}

// NewPostgresUsuarioRepository cria uma nova instância de PostgresUsuarioRepository
func NewPostgresUsuarioRepository(db *database.PostgresDB) *PostgresUsuarioRepository {
	return &PostgresUsuarioRepository{db: db}
}

// Create implementa usuario.Repository.Create
func (r *PostgresUsuarioRepository) Create(ctx context.Context, u *usuario.Usuario) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO usuarios (username, password_hash, nome_completo, cpf, setor, cargo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = conn.QueryRow(ctx, query,
		u.Username,
		u.PasswordHash,
		u.NomeCompleto,
		u.CPF,
		u.Setor,
		u.Cargo,
		u.CreatedAt,
	).Scan(&u.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return ErrUsuarioDuplicado
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa usuario.Repository.FindByID
func (r *PostgresUsuarioRepository) FindByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	return r.findByQuery(ctx, "WHERE id = $1", id)
}

// FindByUsername implementa usuario.Repository.FindByUsername
func (r *PostgresUsuarioRepository) FindByUsername(ctx context.Context, username string) (*usuario.Usuario, error) {
	return r.findByQuery(ctx, "WHERE username = $1", username)
}

func (r *PostgresUsuarioRepository) findByQuery(ctx context.Context, where string, args ...interface{}) (*usuario.Usuario, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := "SELECT id, username, password_hash, nome_completo, cpf, setor, cargo, created_at FROM usuarios " + where

	u := &usuario.Usuario{}
	err = conn.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.NomeCompleto,
		&u.CPF,
		&u.Setor,
		&u.Cargo,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return u, nil
}

// List implementa usuario.Repository.List
func (r *PostgresUsuarioRepository) List(ctx context.Context) ([]*usuario.Usuario, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT id, username, password_hash, nome_completo, cpf, setor, cargo, created_at FROM usuarios ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var usuarios []*usuario.Usuario
	for rows.Next() {
		u := &usuario.Usuario{}
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.PasswordHash,
			&u.NomeCompleto,
			&u.CPF,
			&u.Setor,
			&u.Cargo,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		usuarios = append(usuarios, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return usuarios, nil
}

// Update implementa usuario.Repository.Update
func (r *PostgresUsuarioRepository) Update(ctx context.Context, u *usuario.Usuario) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE usuarios
		SET username = $1,
			password_hash = $2,
			nome_completo = $3,
			cpf = $4,
			setor = $5,
			cargo = $6
		WHERE id = $7
	`

	result, err := conn.Exec(ctx, query,
		u.Username,
		u.PasswordHash,
		u.NomeCompleto,
		u.CPF,
		u.Setor,
		u.Cargo,
		u.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUsuarioDuplicado
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUsuarioNaoEncontrado
	}

	return nil
}

// Delete implementa usuario.Repository.Delete
func (r *PostgresUsuarioRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao excluir usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUsuarioNaoEncontrado
	}

	return nil
}
