package financeiro

import (
	"context"
	"time"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ComissaoUseCase totais de comissão por profissional (somente leitura).
// Comissão = percentual sobre o valor de atendimentos concluídos E pagos;
// o percentual do serviço prevalece, senão o do profissional.
type ComissaoUseCase struct {
	repo repository.FinanceiroRepository
}

// NewComissaoUseCase constrói o caso de uso.
func NewComissaoUseCase(repo repository.FinanceiroRepository) *ComissaoUseCase {
	return &ComissaoUseCase{repo: repo}
}

// Totais devolve as comissões do período. Período invertido é rejeitado.
func (uc *ComissaoUseCase) Totais(ctx context.Context, inicio, fim time.Time) ([]dto.ComissaoResponse, error) {
	if fim.Before(inicio) {
		return nil, domain.ErrEntradaInvalida
	}
	resultados, err := uc.repo.ComissoesPorProfissional(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComissaoResponse, 0, len(resultados))
	for _, r := range resultados {
		out = append(out, dto.ComissaoResponse{
			ProfissionalID:   r.ProfissionalID,
			ProfissionalNome: r.ProfissionalNome,
			Atendimentos:     r.Atendimentos,
			ValorServicos:    r.ValorServicos,
			ValorComissao:    r.ValorComissao,
		})
	}
	return out, nil
}
