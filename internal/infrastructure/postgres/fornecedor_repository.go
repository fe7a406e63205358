package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de fornecedores. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um fornecedor.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO fornecedores (id, nome, contato, email, telefone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Nome, f.Contato, f.Email, f.Telefone, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Devolve (nil, nil) se não existir.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nome, contato, email, telefone, created_at, updated_at
		FROM fornecedores WHERE id = $1`, id).Scan(
		&f.ID, &f.Nome, &f.Contato, &f.Email, &f.Telefone, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// Update atualiza um fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE fornecedores SET nome = $2, contato = $3, email = $4, telefone = $5, updated_at = $6
		WHERE id = $1`,
		f.ID, f.Nome, f.Contato, f.Email, f.Telefone, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// List lista fornecedores por nome.
func (r *FornecedorRepo) List() ([]*entity.Fornecedor, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nome, contato, email, telefone, created_at, updated_at
		FROM fornecedores ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.Contato, &f.Email, &f.Telefone, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
