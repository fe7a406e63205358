package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.ProfissionalRepository = (*ProfissionalRepo)(nil)

// ProfissionalRepo implementação de ProfissionalRepository sobre PostgreSQL.
type ProfissionalRepo struct {
	q Querier
}

// NewProfissionalRepository constrói o adaptador de profissionais. Passar pool ou tx (Querier).
func NewProfissionalRepository(q Querier) *ProfissionalRepo {
	return &ProfissionalRepo{q: q}
}

const profissionalCols = `id, nome, email, telefone, comissao_percentual, token_agenda, ativo, created_at, updated_at`

// Create persiste um profissional.
func (r *ProfissionalRepo) Create(p *entity.Profissional) error {
	query := `
		INSERT INTO profissionais (` + profissionalCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Email, p.Telefone, p.ComissaoPercentual, p.TokenAgenda, p.Ativo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profissional: %w", err)
	}
	return nil
}

// GetByID obtém um profissional por ID. Devolve (nil, nil) se não existir.
func (r *ProfissionalRepo) GetByID(id string) (*entity.Profissional, error) {
	query := `SELECT ` + profissionalCols + ` FROM profissionais WHERE id = $1`
	var p entity.Profissional
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Email, &p.Telefone, &p.ComissaoPercentual, &p.TokenAgenda, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profissional: %w", err)
	}
	return &p, nil
}

// Update atualiza um profissional (inclui rotação do token de agenda).
func (r *ProfissionalRepo) Update(p *entity.Profissional) error {
	query := `
		UPDATE profissionais
		SET nome = $2, email = $3, telefone = $4, comissao_percentual = $5, token_agenda = $6, ativo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Email, p.Telefone, p.ComissaoPercentual, p.TokenAgenda, p.Ativo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profissional: %w", err)
	}
	return nil
}

// List lista profissionais por nome; somenteAtivos filtra os inativos.
func (r *ProfissionalRepo) List(somenteAtivos bool) ([]*entity.Profissional, error) {
	query := `SELECT ` + profissionalCols + ` FROM profissionais`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profissionais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profissional
	for rows.Next() {
		var p entity.Profissional
		if err := rows.Scan(&p.ID, &p.Nome, &p.Email, &p.Telefone, &p.ComissaoPercentual, &p.TokenAgenda, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profissional: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
