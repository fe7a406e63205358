package repository

import "github.com/salaobella/salao-api/internal/domain/entity"

// OrcamentoRepository porta de persistência de orçamentos.
// Cabeçalho e itens formam uma unidade transacional: CriarOrcamento usa
// Create + CreateItem dentro da mesma transação (OrcamentoTxRunner).
type OrcamentoRepository interface {
	Create(o *entity.Orcamento) error
	CreateItem(item *entity.OrcamentoItem) error
	// GetByID devolve o orçamento com itens (join com nome do serviço).
	GetByID(id string) (*entity.Orcamento, error)
	// List pagina por created_at desc; status vazio lista todos.
	List(status string, limit, offset int) ([]*entity.Orcamento, error)
	// ListPainel ordena por validade desc (lista do painel).
	ListPainel(limit, offset int) ([]*entity.Orcamento, error)
	UpdateStatus(id, status string) error
}
