package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de usuários. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário. Devolve ErrEmailJaCadastrado se o e-mail já existir.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO usuarios (id, nome, email, senha_hash, role, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.Role, u.Ativo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID. Devolve (nil, nil) se não existir.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByEmail obtém um usuário pelo e-mail. Devolve (nil, nil) se não existir.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.get(`WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(where string, arg any) (*entity.Usuario, error) {
	query := `SELECT id, nome, email, senha_hash, role, ativo, created_at, updated_at FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Role, &u.Ativo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
