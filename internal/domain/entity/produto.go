package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item de estoque do salão.
// QuantidadeAtual só é alterada via movimentações de estoque, nunca escrita
// diretamente por clientes após o cadastro.
type Produto struct {
	ID                    string
	Nome                  string
	Categoria             string
	QuantidadeAtual       int
	QuantidadeMinima      int
	PrecoCusto            decimal.Decimal
	PrecoVenda            decimal.Decimal
	Validade              *time.Time // opcional; habilita rastreio por lote
	FornecedorPrincipalID string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AbaixoDoMinimo indica se o produto está no ponto de reposição.
func (p *Produto) AbaixoDoMinimo() bool {
	return p.QuantidadeAtual <= p.QuantidadeMinima
}
