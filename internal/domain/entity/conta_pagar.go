package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de conta a pagar.
const (
	ContaPendente = "PENDENTE"
	ContaPaga     = "PAGO"
)

// ContaPagar representa uma despesa do salão, avulsa ou recorrente.
// Contas recorrentes geram parcelas mensais na criação.
type ContaPagar struct {
	ID            string
	Descricao     string
	Categoria     string
	Valor         decimal.Decimal
	Vencimento    time.Time
	Status        string // PENDENTE, PAGO
	DataPagamento *time.Time
	Recorrente    bool
	ParcelaNumero int    // 1-based quando recorrente; 0 para conta avulsa
	ParcelaTotal  int    // total de parcelas da série
	SerieID       string // agrupa as parcelas de uma mesma conta recorrente
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
