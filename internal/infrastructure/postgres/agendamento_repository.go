package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.AgendamentoRepository = (*AgendamentoRepo)(nil)

// AgendamentoRepo implementação de AgendamentoRepository sobre PostgreSQL.
type AgendamentoRepo struct {
	q Querier
}

// NewAgendamentoRepository constrói o adaptador de agendamentos. Passar pool ou tx (Querier).
func NewAgendamentoRepository(q Querier) *AgendamentoRepo {
	return &AgendamentoRepo{q: q}
}

const agendamentoCols = `id, cliente_nome, cliente_email, cliente_telefone, servico_id, profissional_id, inicio, fim, status, valor, pago, observacoes, created_at, updated_at`

// Create persiste um agendamento.
func (r *AgendamentoRepo) Create(a *entity.Agendamento) error {
	query := `
		INSERT INTO agendamentos (` + agendamentoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ClienteNome, a.ClienteEmail, a.ClienteTelefone, a.ServicoID, a.ProfissionalID,
		a.Inicio, a.Fim, a.Status, a.Valor, a.Pago, a.Observacoes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agendamento: %w", err)
	}
	return nil
}

// GetByID obtém um agendamento por ID. Devolve (nil, nil) se não existir.
func (r *AgendamentoRepo) GetByID(id string) (*entity.Agendamento, error) {
	query := `SELECT ` + agendamentoCols + ` FROM agendamentos WHERE id = $1`
	var a entity.Agendamento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ClienteNome, &a.ClienteEmail, &a.ClienteTelefone, &a.ServicoID, &a.ProfissionalID,
		&a.Inicio, &a.Fim, &a.Status, &a.Valor, &a.Pago, &a.Observacoes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agendamento: %w", err)
	}
	return &a, nil
}

// Update atualiza um agendamento (inclui mudança de status).
func (r *AgendamentoRepo) Update(a *entity.Agendamento) error {
	query := `
		UPDATE agendamentos
		SET cliente_nome = $2, cliente_email = $3, cliente_telefone = $4, servico_id = $5,
		    profissional_id = $6, inicio = $7, fim = $8, status = $9, valor = $10,
		    pago = $11, observacoes = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ClienteNome, a.ClienteEmail, a.ClienteTelefone, a.ServicoID, a.ProfissionalID,
		a.Inicio, a.Fim, a.Status, a.Valor, a.Pago, a.Observacoes, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agendamento: %w", err)
	}
	return nil
}

// Delete remove um agendamento.
func (r *AgendamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM agendamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agendamento: %w", err)
	}
	return nil
}

// List lista agendamentos do período, opcionalmente filtrados por profissional.
func (r *AgendamentoRepo) List(inicio, fim time.Time, profissionalID string) ([]*entity.Agendamento, error) {
	query := `SELECT ` + agendamentoCols + ` FROM agendamentos WHERE inicio >= $1 AND inicio < $2`
	args := []any{inicio, fim}
	if profissionalID != "" {
		query += ` AND profissional_id = $3`
		args = append(args, profissionalID)
	}
	query += ` ORDER BY inicio ASC`
	return r.list(query, args...)
}

// ListAgendaProfissional devolve os agendamentos não encerrados de um
// profissional (para o feed iCalendar), em ordem de início.
func (r *AgendamentoRepo) ListAgendaProfissional(profissionalID string) ([]*entity.Agendamento, error) {
	query := `
		SELECT ` + agendamentoCols + `
		FROM agendamentos
		WHERE profissional_id = $1 AND status NOT IN ($2, $3)
		ORDER BY inicio ASC`
	return r.list(query, profissionalID, entity.AgendamentoConcluido, entity.AgendamentoCancelado)
}

func (r *AgendamentoRepo) list(query string, args ...any) ([]*entity.Agendamento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agendamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agendamento
	for rows.Next() {
		var a entity.Agendamento
		if err := rows.Scan(
			&a.ID, &a.ClienteNome, &a.ClienteEmail, &a.ClienteTelefone, &a.ServicoID, &a.ProfissionalID,
			&a.Inicio, &a.Fim, &a.Status, &a.Valor, &a.Pago, &a.Observacoes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agendamento: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
