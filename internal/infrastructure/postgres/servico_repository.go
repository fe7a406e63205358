package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.ServicoRepository = (*ServicoRepo)(nil)

// ServicoRepo implementação de ServicoRepository sobre PostgreSQL.
type ServicoRepo struct {
	q Querier
}

// NewServicoRepository constrói o adaptador de serviços. Passar pool ou tx (Querier).
func NewServicoRepository(q Querier) *ServicoRepo {
	return &ServicoRepo{q: q}
}

const servicoCols = `id, nome, descricao, preco, duracao_minutos, comissao_percentual, ativo, created_at, updated_at`

// Create persiste um serviço.
func (r *ServicoRepo) Create(s *entity.Servico) error {
	query := `
		INSERT INTO servicos (` + servicoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nome, s.Descricao, s.Preco, s.DuracaoMinutos, s.ComissaoPercentual, s.Ativo, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert servico: %w", err)
	}
	return nil
}

// GetByID obtém um serviço por ID. Devolve (nil, nil) se não existir.
func (r *ServicoRepo) GetByID(id string) (*entity.Servico, error) {
	query := `SELECT ` + servicoCols + ` FROM servicos WHERE id = $1`
	var s entity.Servico
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nome, &s.Descricao, &s.Preco, &s.DuracaoMinutos, &s.ComissaoPercentual, &s.Ativo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servico: %w", err)
	}
	return &s, nil
}

// Update atualiza um serviço.
func (r *ServicoRepo) Update(s *entity.Servico) error {
	query := `
		UPDATE servicos
		SET nome = $2, descricao = $3, preco = $4, duracao_minutos = $5, comissao_percentual = $6, ativo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nome, s.Descricao, s.Preco, s.DuracaoMinutos, s.ComissaoPercentual, s.Ativo, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update servico: %w", err)
	}
	return nil
}

// List lista serviços por nome; somenteAtivos filtra os inativos.
func (r *ServicoRepo) List(somenteAtivos bool) ([]*entity.Servico, error) {
	query := `SELECT ` + servicoCols + ` FROM servicos`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servico
	for rows.Next() {
		var s entity.Servico
		if err := rows.Scan(&s.ID, &s.Nome, &s.Descricao, &s.Preco, &s.DuracaoMinutos, &s.ComissaoPercentual, &s.Ativo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servico: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
