package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servico representa um serviço oferecido pelo salão.
type Servico struct {
	ID                 string
	Nome               string
	Descricao          string
	Preco              decimal.Decimal
	DuracaoMinutos     int
	ComissaoPercentual decimal.Decimal // percentual pago ao profissional sobre o valor do atendimento
	Ativo              bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
