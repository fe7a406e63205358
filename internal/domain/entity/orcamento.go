package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de orçamento.
const (
	OrcamentoRascunho  = "RASCUNHO"
	OrcamentoEnviado   = "ENVIADO"
	OrcamentoAprovado  = "APROVADO"
	OrcamentoRejeitado = "REJEITADO"
	OrcamentoExpirado  = "EXPIRADO"

	// OrcamentoPendente é um status apenas de exibição (painel): cobre
	// RASCUNHO e ENVIADO.
	OrcamentoPendente = "PENDENTE"
)

// Orcamento é o documento de orçamento enviado ao cliente.
// Os campos de cliente são snapshot na criação, não referências vivas.
// Invariantes: Subtotal = soma dos ValorTotal dos itens; Total = Subtotal - Desconto.
type Orcamento struct {
	ID              string
	Numero          string // legível, ex.: ORC-1735689600
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string
	ClienteEndereco string
	EmpresaInfo     string
	Subtotal        decimal.Decimal
	Desconto        decimal.Decimal
	Total           decimal.Decimal
	Validade        time.Time
	Status          string
	Observacoes     string
	Condicoes       string
	CriadoPor       string
	CreatedAt       time.Time

	// Itens pertencem exclusivamente ao orçamento (unidade transacional única).
	Itens []OrcamentoItem
}

// StatusExibicao devolve o status para o painel: APROVADO, REJEITADO e EXPIRADO
// aparecem como estão; qualquer outro é exibido como PENDENTE.
func (o *Orcamento) StatusExibicao() string {
	switch o.Status {
	case OrcamentoAprovado, OrcamentoRejeitado, OrcamentoExpirado:
		return o.Status
	default:
		return OrcamentoPendente
	}
}

// OrcamentoItem é uma linha do orçamento.
type OrcamentoItem struct {
	ID            string
	OrcamentoID   string
	ServicoID     *string // opcional
	ServicoNome   string  // preenchido por join na leitura
	Descricao     string
	Quantidade    int
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal
	Ordem         int // 1-based
}
