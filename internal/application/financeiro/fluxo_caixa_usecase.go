package financeiro

import (
	"context"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// FluxoCaixaUseCase resumo mensal de caixa: receitas de atendimentos pagos
// contra despesas de contas pagas (somente leitura).
type FluxoCaixaUseCase struct {
	repo repository.FinanceiroRepository
}

// NewFluxoCaixaUseCase constrói o caso de uso.
func NewFluxoCaixaUseCase(repo repository.FinanceiroRepository) *FluxoCaixaUseCase {
	return &FluxoCaixaUseCase{repo: repo}
}

// Mensal devolve os doze meses do ano com receitas, despesas e saldo.
func (uc *FluxoCaixaUseCase) Mensal(ctx context.Context, ano int) ([]dto.FluxoCaixaMensalResponse, error) {
	if ano < 2000 || ano > 2100 {
		return nil, domain.ErrEntradaInvalida
	}
	resultados, err := uc.repo.FluxoCaixaMensal(ctx, ano)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FluxoCaixaMensalResponse, 0, len(resultados))
	for _, r := range resultados {
		out = append(out, dto.FluxoCaixaMensalResponse{
			Ano:      r.Ano,
			Mes:      r.Mes,
			Receitas: r.Receitas,
			Despesas: r.Despesas,
			Saldo:    r.Saldo,
		})
	}
	return out, nil
}
