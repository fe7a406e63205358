package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CadastrarProdutoRequest corpo de POST /api/inventory/products.
// Validade aceita "YYYY-MM-DD" ou "MM/DD/YYYY"; outros formatos são descartados
// silenciosamente (leniência herdada do comportamento de referência).
type CadastrarProdutoRequest struct {
	Nome                  string          `json:"nome"`
	Categoria             string          `json:"categoria"`
	QuantidadeMinima      int             `json:"quantidade_minima"`
	QuantidadeAtual       int             `json:"quantidade_atual"`
	PrecoCusto            decimal.Decimal `json:"preco_custo"`
	PrecoVenda            decimal.Decimal `json:"preco_venda"`
	Validade              string          `json:"validade"`
	FornecedorPrincipalID string          `json:"fornecedor_principal_id"`
}

// CadastrarProdutoResponse resposta do cadastro.
type CadastrarProdutoResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// RegistrarMovimentacaoRequest corpo de POST /api/inventory/movements.
type RegistrarMovimentacaoRequest struct {
	ProdutoID  string `json:"productId"`
	Tipo       string `json:"type"` // entrada | saida | ajuste
	Quantidade int    `json:"quantity"`
	Origem     string `json:"origin"`
}

// RegistrarMovimentacaoResponse resposta com a quantidade resultante.
type RegistrarMovimentacaoResponse struct {
	ID              string `json:"id"`
	QuantidadeAtual int    `json:"quantidade_atual"`
}

// EsgotarProdutoRequest corpo de POST /api/inventory/products/deplete.
type EsgotarProdutoRequest struct {
	ID string `json:"id"`
}

// EsgotarProdutoResponse resposta do esgotamento. JaZerado informa o no-op.
type EsgotarProdutoResponse struct {
	OK       bool `json:"ok"`
	JaZerado bool `json:"ja_zerado,omitempty"`
}

// ProdutoResponse representação de produto em listagens.
type ProdutoResponse struct {
	ID                    string          `json:"id"`
	Nome                  string          `json:"nome"`
	Categoria             string          `json:"categoria,omitempty"`
	QuantidadeAtual       int             `json:"quantidade_atual"`
	QuantidadeMinima      int             `json:"quantidade_minima"`
	PrecoCusto            decimal.Decimal `json:"preco_custo"`
	PrecoVenda            decimal.Decimal `json:"preco_venda"`
	Validade              *time.Time      `json:"validade,omitempty"`
	FornecedorPrincipalID string          `json:"fornecedor_principal_id,omitempty"`
	AbaixoDoMinimo        bool            `json:"abaixo_do_minimo"`
}

// CriarVinculoRequest corpo de POST /api/inventory/service-product-links.
type CriarVinculoRequest struct {
	ServicoID       string `json:"serviceId"`
	ProdutoID       string `json:"productId"`
	Quantidade      int    `json:"quantity"`
	Obrigatorio     bool   `json:"required"`
	BaixaAutomatica bool   `json:"autoDeduct"`
	Observacoes     string `json:"notes"`
}

// AtualizarVinculoRequest atualização parcial de vínculo; só campos presentes são aplicados.
type AtualizarVinculoRequest struct {
	Quantidade      *int    `json:"quantity"`
	Obrigatorio     *bool   `json:"required"`
	BaixaAutomatica *bool   `json:"autoDeduct"`
	Observacoes     *string `json:"notes"`
}

// VinculoResponse representação de vínculo serviço×produto.
type VinculoResponse struct {
	ID              string    `json:"id"`
	ServicoID       string    `json:"serviceId"`
	ProdutoID       string    `json:"productId"`
	Quantidade      int       `json:"quantity"`
	Obrigatorio     bool      `json:"required"`
	BaixaAutomatica bool      `json:"autoDeduct"`
	Observacoes     string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
