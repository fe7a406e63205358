package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComissaoResponse total de comissão por profissional no período.
type ComissaoResponse struct {
	ProfissionalID   string          `json:"professionalId"`
	ProfissionalNome string          `json:"professionalName"`
	Atendimentos     int             `json:"appointments"`
	ValorServicos    decimal.Decimal `json:"servicesValue"`
	ValorComissao    decimal.Decimal `json:"commissionValue"`
}

// CriarContaPagarRequest corpo de POST /api/financeiro/contas-pagar.
// Recorrente=true com Parcelas N gera N parcelas mensais a partir do vencimento.
type CriarContaPagarRequest struct {
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria"`
	Valor      decimal.Decimal `json:"valor"`
	Vencimento string          `json:"vencimento"` // ISO YYYY-MM-DD
	Recorrente bool            `json:"recorrente"`
	Parcelas   int             `json:"parcelas"`
}

// ContaPagarResponse conta (ou parcela) persistida.
type ContaPagarResponse struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Categoria     string          `json:"categoria,omitempty"`
	Valor         decimal.Decimal `json:"valor"`
	Vencimento    time.Time       `json:"vencimento"`
	Status        string          `json:"status"`
	DataPagamento *time.Time      `json:"data_pagamento,omitempty"`
	Recorrente    bool            `json:"recorrente"`
	ParcelaNumero int             `json:"parcela_numero,omitempty"`
	ParcelaTotal  int             `json:"parcela_total,omitempty"`
	SerieID       string          `json:"serie_id,omitempty"`
}

// AtualizarStatusContaRequest transição de status de uma conta.
type AtualizarStatusContaRequest struct {
	Status        string `json:"status"` // PENDENTE | PAGO
	DataPagamento string `json:"data_pagamento"`
}

// FluxoCaixaMensalResponse resumo de um mês do fluxo de caixa.
type FluxoCaixaMensalResponse struct {
	Ano      int             `json:"ano"`
	Mes      int             `json:"mes"`
	Receitas decimal.Decimal `json:"receitas"`
	Despesas decimal.Decimal `json:"despesas"`
	Saldo    decimal.Decimal `json:"saldo"`
}
