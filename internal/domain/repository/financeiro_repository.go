package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salaobella/salao-api/internal/domain/entity"
)

// ComissaoResult total de comissão de um profissional no período.
// Considera apenas atendimentos concluídos e pagos.
type ComissaoResult struct {
	ProfissionalID   string
	ProfissionalNome string
	Atendimentos     int
	ValorServicos    decimal.Decimal
	ValorComissao    decimal.Decimal
}

// FluxoCaixaMensalResult resumo mensal de caixa.
type FluxoCaixaMensalResult struct {
	Ano      int
	Mes      int
	Receitas decimal.Decimal // atendimentos pagos
	Despesas decimal.Decimal // contas pagas
	Saldo    decimal.Decimal
}

// FinanceiroRepository consultas somente leitura de relatórios financeiros.
type FinanceiroRepository interface {
	ComissoesPorProfissional(ctx context.Context, inicio, fim time.Time) ([]ComissaoResult, error)
	FluxoCaixaMensal(ctx context.Context, ano int) ([]FluxoCaixaMensalResult, error)
}

// ContaPagarRepository porta de contas a pagar.
type ContaPagarRepository interface {
	// CreateInBatch cria a série completa de parcelas de uma vez (ignora se vazio).
	CreateInBatch(contas []*entity.ContaPagar) error
	GetByID(id string) (*entity.ContaPagar, error)
	// UpdateStatus ajusta o status e a data de pagamento: "PAGO" grava a data,
	// qualquer outro status a zera.
	UpdateStatus(id, status string, dataPagamento time.Time) error
	List(status string, inicio, fim time.Time) ([]*entity.ContaPagar, error)
}
