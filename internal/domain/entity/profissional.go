package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profissional representa um profissional do salão.
// TokenAgenda autentica o feed iCalendar individual (query param, sem JWT).
type Profissional struct {
	ID                 string
	Nome               string
	Email              string
	Telefone           string
	ComissaoPercentual decimal.Decimal // usado quando o serviço não define percentual próprio
	TokenAgenda        string
	Ativo              bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
