package repository

import "github.com/salaobella/salao-api/internal/domain/entity"

// ProdutoRepository porta de persistência de produtos.
// QuantidadeAtual só muda via UpdateQuantidade, chamado pelo razão de estoque
// dentro de transação com a linha bloqueada (GetForUpdate).
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
	// Serializa movimentações concorrentes sobre o mesmo produto.
	GetForUpdate(id string) (*entity.Produto, error)
	UpdateQuantidade(id string, quantidade int) error
	Update(p *entity.Produto) error
	List(limit, offset int) ([]*entity.Produto, error)
}
