package repository

import "github.com/salaobella/salao-api/internal/domain/entity"

// MovimentacaoRepository porta do log append-only de movimentações.
// Movimentações nunca são atualizadas nem removidas.
type MovimentacaoRepository interface {
	Create(m *entity.MovimentacaoEstoque) error
	ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error)
}

// LoteRepository porta de lotes de produto (rastreabilidade).
type LoteRepository interface {
	Create(l *entity.LoteProduto) error
	ListByProduto(produtoID string) ([]*entity.LoteProduto, error)
}
