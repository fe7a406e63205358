package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarOrcamentoItemRequest linha do orçamento. O valor total da linha é
// confiado como enviado pelo chamador, não recomputado de quantidade × unitário.
type CriarOrcamentoItemRequest struct {
	ServicoID     string          `json:"serviceId"`
	Descricao     string          `json:"description"`
	Quantidade    int             `json:"quantity"`
	ValorUnitario decimal.Decimal `json:"unitValue"`
	ValorTotal    decimal.Decimal `json:"lineTotal"`
	Ordem         int             `json:"ordem"` // opcional; se ausente usa a posição
}

// CriarOrcamentoRequest corpo de POST /api/quotes.
type CriarOrcamentoRequest struct {
	ClienteNome     string                      `json:"clientName"`
	ClienteEmail    string                      `json:"clientEmail"`
	ClienteTelefone string                      `json:"clientPhone"`
	ClienteEndereco string                      `json:"clientAddress"`
	EmpresaInfo     string                      `json:"companyInfo"`
	Itens           []CriarOrcamentoItemRequest `json:"items"`
	Desconto        decimal.Decimal             `json:"discount"`
	Validade        string                      `json:"validityDate"` // ISO YYYY-MM-DD
	Observacoes     string                      `json:"notes"`
	Condicoes       string                      `json:"terms"`
}

// OrcamentoItemResponse linha persistida, com o nome do serviço quando aplicável.
type OrcamentoItemResponse struct {
	ID            string          `json:"id"`
	ServicoID     string          `json:"serviceId,omitempty"`
	ServicoNome   string          `json:"serviceName,omitempty"`
	Descricao     string          `json:"description"`
	Quantidade    int             `json:"quantity"`
	ValorUnitario decimal.Decimal `json:"unitValue"`
	ValorTotal    decimal.Decimal `json:"lineTotal"`
	Ordem         int             `json:"ordem"`
}

// OrcamentoResponse orçamento persistido com itens.
type OrcamentoResponse struct {
	ID              string                  `json:"id"`
	Numero          string                  `json:"numero"`
	ClienteNome     string                  `json:"clientName"`
	ClienteEmail    string                  `json:"clientEmail"`
	ClienteTelefone string                  `json:"clientPhone,omitempty"`
	ClienteEndereco string                  `json:"clientAddress,omitempty"`
	EmpresaInfo     string                  `json:"companyInfo,omitempty"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	Desconto        decimal.Decimal         `json:"discount"`
	Total           decimal.Decimal         `json:"total"`
	Validade        time.Time               `json:"validityDate"`
	Status          string                  `json:"status"`
	StatusExibicao  string                  `json:"displayStatus"`
	Observacoes     string                  `json:"notes,omitempty"`
	Condicoes       string                  `json:"terms,omitempty"`
	CriadoPor       string                  `json:"createdBy"`
	CreatedAt       time.Time               `json:"createdAt"`
	Itens           []OrcamentoItemResponse `json:"items"`
}

// OrcamentoPageResponse página de orçamentos.
type OrcamentoPageResponse struct {
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
	Itens  []OrcamentoResponse `json:"quotes"`
}
