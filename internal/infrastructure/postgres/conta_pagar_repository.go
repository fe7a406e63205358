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

var _ repository.ContaPagarRepository = (*ContaPagarRepo)(nil)

// ContaPagarRepo implementação de ContaPagarRepository sobre PostgreSQL.
type ContaPagarRepo struct {
	q Querier
}

// NewContaPagarRepository constrói o adaptador de contas a pagar. Passar pool ou tx (Querier).
func NewContaPagarRepository(q Querier) *ContaPagarRepo {
	return &ContaPagarRepo{q: q}
}

const contaCols = `id, descricao, categoria, valor, vencimento, status, data_pagamento, recorrente, parcela_numero, parcela_total, serie_id, created_at, updated_at`

// CreateInBatch insere a série completa de parcelas. Ignora lista vazia.
func (r *ContaPagarRepo) CreateInBatch(contas []*entity.ContaPagar) error {
	if len(contas) == 0 {
		return nil
	}
	query := `
		INSERT INTO contas_pagar (` + contaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, c := range contas {
		serieID := (*string)(nil)
		if c.SerieID != "" {
			serieID = &c.SerieID
		}
		_, err := r.q.Exec(context.Background(), query,
			c.ID, c.Descricao, c.Categoria, c.Valor, c.Vencimento, c.Status, c.DataPagamento,
			c.Recorrente, c.ParcelaNumero, c.ParcelaTotal, serieID, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert conta a pagar: %w", err)
		}
	}
	return nil
}

// GetByID obtém uma conta por ID. Devolve (nil, nil) se não existir.
func (r *ContaPagarRepo) GetByID(id string) (*entity.ContaPagar, error) {
	query := `SELECT ` + contaCols + ` FROM contas_pagar WHERE id = $1`
	var c entity.ContaPagar
	var serieID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Descricao, &c.Categoria, &c.Valor, &c.Vencimento, &c.Status, &c.DataPagamento,
		&c.Recorrente, &c.ParcelaNumero, &c.ParcelaTotal, &serieID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta a pagar: %w", err)
	}
	if serieID != nil {
		c.SerieID = *serieID
	}
	return &c, nil
}

// UpdateStatus ajusta status e data de pagamento: "PAGO" grava a data,
// qualquer outro status a zera.
func (r *ContaPagarRepo) UpdateStatus(id, status string, dataPagamento time.Time) error {
	var data *time.Time
	if status == entity.ContaPaga {
		data = &dataPagamento
	}
	_, err := r.q.Exec(context.Background(), `
		UPDATE contas_pagar SET status = $2, data_pagamento = $3, updated_at = now()
		WHERE id = $1`,
		id, status, data,
	)
	if err != nil {
		return fmt.Errorf("update conta status: %w", err)
	}
	return nil
}

// List lista contas por vencimento crescente, filtrando por status (vazio
// lista todos) e por período de vencimento.
func (r *ContaPagarRepo) List(status string, inicio, fim time.Time) ([]*entity.ContaPagar, error) {
	query := `SELECT ` + contaCols + ` FROM contas_pagar WHERE vencimento >= $1 AND vencimento < $2`
	args := []any{inicio, fim}
	if status != "" {
		query += ` AND status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY vencimento ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contas a pagar: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContaPagar
	for rows.Next() {
		var c entity.ContaPagar
		var serieID *string
		if err := rows.Scan(
			&c.ID, &c.Descricao, &c.Categoria, &c.Valor, &c.Vencimento, &c.Status, &c.DataPagamento,
			&c.Recorrente, &c.ParcelaNumero, &c.ParcelaTotal, &serieID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conta a pagar: %w", err)
		}
		if serieID != nil {
			c.SerieID = *serieID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
