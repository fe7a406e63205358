package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementação de LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste um lote de produto.
func (r *LoteRepo) Create(l *entity.LoteProduto) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO lotes_produto (id, produto_id, codigo, validade, quantidade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.ProdutoID, l.Codigo, l.Validade, l.Quantidade, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lote: %w", err)
	}
	return nil
}

// ListByProduto lista os lotes de um produto por validade crescente.
func (r *LoteRepo) ListByProduto(produtoID string) ([]*entity.LoteProduto, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, produto_id, codigo, validade, quantidade, created_at
		FROM lotes_produto WHERE produto_id = $1 ORDER BY validade ASC`,
		produtoID,
	)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoteProduto
	for rows.Next() {
		var l entity.LoteProduto
		if err := rows.Scan(&l.ID, &l.ProdutoID, &l.Codigo, &l.Validade, &l.Quantidade, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
