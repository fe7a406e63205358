package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de agendamento.
const (
	AgendamentoAgendado   = "AGENDADO"
	AgendamentoConfirmado = "CONFIRMADO"
	AgendamentoConcluido  = "CONCLUIDO"
	AgendamentoCancelado  = "CANCELADO"
)

// Agendamento representa um atendimento marcado para um profissional.
// Dados do cliente são snapshot no momento da marcação.
type Agendamento struct {
	ID              string
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string
	ServicoID       string
	ProfissionalID  string
	Inicio          time.Time
	Fim             time.Time
	Status          string // AGENDADO, CONFIRMADO, CONCLUIDO, CANCELADO
	Valor           decimal.Decimal
	Pago            bool
	Observacoes     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Encerrado indica se o agendamento não deve mais aparecer na agenda (feed ICS).
func (a *Agendamento) Encerrado() bool {
	return a.Status == AgendamentoConcluido || a.Status == AgendamentoCancelado
}
