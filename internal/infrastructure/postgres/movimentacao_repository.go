package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação append-only do razão de estoque sobre PostgreSQL.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação. Movimentações nunca são atualizadas nem removidas.
func (r *MovimentacaoRepo) Create(m *entity.MovimentacaoEstoque) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes_estoque (id, produto_id, tipo, quantidade, origem, validade, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	criadoPor := (*string)(nil)
	if m.CreatedBy != "" {
		criadoPor = &m.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProdutoID, m.Tipo, m.Quantidade, m.Origem, m.Validade, m.CreatedAt, criadoPor,
	)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}

// ListByProduto lista o histórico de um produto, mais recente primeiro.
func (r *MovimentacaoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	query := `
		SELECT id, produto_id, tipo, quantidade, origem, validade, created_at, created_by
		FROM movimentacoes_estoque
		WHERE produto_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, produtoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		var criadoPor *string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &m.Origem, &m.Validade, &m.CreatedAt, &criadoPor); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		if criadoPor != nil {
			m.CreatedBy = *criadoPor
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
