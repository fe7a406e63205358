package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarAgendamentoRequest corpo de POST /api/appointments.
type CriarAgendamentoRequest struct {
	ClienteNome     string          `json:"clientName"`
	ClienteEmail    string          `json:"clientEmail"`
	ClienteTelefone string          `json:"clientPhone"`
	ServicoID       string          `json:"serviceId"`
	ProfissionalID  string          `json:"professionalId"`
	Inicio          time.Time       `json:"start"`
	Fim             time.Time       `json:"end"`
	Valor           decimal.Decimal `json:"value"`
	Observacoes     string          `json:"notes"`
}

// AtualizarAgendamentoRequest atualização parcial de agendamento.
type AtualizarAgendamentoRequest struct {
	Inicio      *time.Time `json:"start"`
	Fim         *time.Time `json:"end"`
	Status      *string    `json:"status"`
	Pago        *bool      `json:"paid"`
	Observacoes *string    `json:"notes"`
}

// AgendamentoResponse agendamento persistido.
type AgendamentoResponse struct {
	ID              string          `json:"id"`
	ClienteNome     string          `json:"clientName"`
	ClienteEmail    string          `json:"clientEmail,omitempty"`
	ClienteTelefone string          `json:"clientPhone,omitempty"`
	ServicoID       string          `json:"serviceId"`
	ProfissionalID  string          `json:"professionalId"`
	Inicio          time.Time       `json:"start"`
	Fim             time.Time       `json:"end"`
	Status          string          `json:"status"`
	Valor           decimal.Decimal `json:"value"`
	Pago            bool            `json:"paid"`
	Observacoes     string          `json:"notes,omitempty"`
}

// ConcluirAgendamentoResponse resultado da conclusão com as baixas aplicadas.
type ConcluirAgendamentoResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	BaixasEstoque []BaixaResponse `json:"stockDeductions"`
}

// BaixaResponse uma baixa de estoque aplicada na conclusão.
type BaixaResponse struct {
	ProdutoID       string `json:"productId"`
	Quantidade      int    `json:"quantity"`
	QuantidadeAtual int    `json:"quantidade_atual"`
	Ignorada        bool   `json:"skipped,omitempty"` // vínculo opcional sem estoque
}
