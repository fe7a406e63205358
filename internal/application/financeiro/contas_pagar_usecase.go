package financeiro

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ContasPagarUseCase contas a pagar, avulsas ou recorrentes. Conta recorrente
// com N parcelas gera a série mensal completa na criação, vencimentos mês a
// mês a partir do primeiro.
type ContasPagarUseCase struct {
	repo repository.ContaPagarRepository
}

// NewContasPagarUseCase constrói o caso de uso.
func NewContasPagarUseCase(repo repository.ContaPagarRepository) *ContasPagarUseCase {
	return &ContasPagarUseCase{repo: repo}
}

// Criar cria a conta (ou a série de parcelas) e devolve as linhas criadas.
func (uc *ContasPagarUseCase) Criar(in dto.CriarContaPagarRequest) ([]dto.ContaPagarResponse, error) {
	if in.Descricao == "" || !in.Valor.IsPositive() {
		return nil, domain.ErrEntradaInvalida
	}
	vencimento, err := time.Parse("2006-01-02", in.Vencimento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	total := 1
	if in.Recorrente {
		if in.Parcelas < 2 {
			return nil, domain.ErrEntradaInvalida
		}
		total = in.Parcelas
	}

	now := time.Now()
	serieID := uuid.New().String()
	contas := make([]*entity.ContaPagar, 0, total)
	for i := 0; i < total; i++ {
		c := &entity.ContaPagar{
			ID:         uuid.New().String(),
			Descricao:  in.Descricao,
			Categoria:  in.Categoria,
			Valor:      in.Valor,
			Vencimento: vencimento.AddDate(0, i, 0),
			Status:     entity.ContaPendente,
			Recorrente: in.Recorrente,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if in.Recorrente {
			c.Descricao = fmt.Sprintf("%s (%d/%d)", in.Descricao, i+1, total)
			c.ParcelaNumero = i + 1
			c.ParcelaTotal = total
			c.SerieID = serieID
		}
		contas = append(contas, c)
	}
	if err := uc.repo.CreateInBatch(contas); err != nil {
		return nil, err
	}

	out := make([]dto.ContaPagarResponse, 0, len(contas))
	for _, c := range contas {
		out = append(out, toContaResponse(c))
	}
	return out, nil
}

// AtualizarStatus transiciona a conta: "PAGO" grava a data de pagamento
// (hoje, se não informada); "PENDENTE" a zera.
func (uc *ContasPagarUseCase) AtualizarStatus(id string, in dto.AtualizarStatusContaRequest) error {
	if id == "" {
		return domain.ErrEntradaInvalida
	}
	if in.Status != entity.ContaPendente && in.Status != entity.ContaPaga {
		return domain.ErrEntradaInvalida
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNaoEncontrado
	}
	dataPagamento := time.Now()
	if in.DataPagamento != "" {
		if d, err := time.Parse("2006-01-02", in.DataPagamento); err == nil {
			dataPagamento = d
		}
	}
	return uc.repo.UpdateStatus(id, in.Status, dataPagamento)
}

// Listar devolve as contas do período, opcionalmente filtradas por status.
func (uc *ContasPagarUseCase) Listar(status string, inicio, fim time.Time) ([]dto.ContaPagarResponse, error) {
	if status != "" && status != entity.ContaPendente && status != entity.ContaPaga {
		return nil, domain.ErrEntradaInvalida
	}
	contas, err := uc.repo.List(status, inicio, fim)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContaPagarResponse, 0, len(contas))
	for _, c := range contas {
		out = append(out, toContaResponse(c))
	}
	return out, nil
}

func toContaResponse(c *entity.ContaPagar) dto.ContaPagarResponse {
	return dto.ContaPagarResponse{
		ID:            c.ID,
		Descricao:     c.Descricao,
		Categoria:     c.Categoria,
		Valor:         c.Valor,
		Vencimento:    c.Vencimento,
		Status:        c.Status,
		DataPagamento: c.DataPagamento,
		Recorrente:    c.Recorrente,
		ParcelaNumero: c.ParcelaNumero,
		ParcelaTotal:  c.ParcelaTotal,
		SerieID:       c.SerieID,
	}
}
