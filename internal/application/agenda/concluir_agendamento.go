package agenda

import (
	"context"
	"errors"
	"time"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ConcluirAgendamentoUseCase transiciona um agendamento para CONCLUIDO e
// aplica a baixa automática dos produtos vinculados ao serviço, tudo na mesma
// transação. Vínculo obrigatório sem estoque suficiente aborta a conclusão;
// vínculo opcional sem estoque é apenas ignorado.
type ConcluirAgendamentoUseCase struct {
	txRunner        AgendaTxRunner
	agendamentoRepo repository.AgendamentoRepository
	vinculoRepo     repository.VinculoRepository
	movimentacaoUC  *estoque.RegistrarMovimentacaoUseCase
}

// NewConcluirAgendamentoUseCase constrói o caso de uso.
func NewConcluirAgendamentoUseCase(
	txRunner AgendaTxRunner,
	agendamentoRepo repository.AgendamentoRepository,
	vinculoRepo repository.VinculoRepository,
	movimentacaoUC *estoque.RegistrarMovimentacaoUseCase,
) *ConcluirAgendamentoUseCase {
	return &ConcluirAgendamentoUseCase{
		txRunner:        txRunner,
		agendamentoRepo: agendamentoRepo,
		vinculoRepo:     vinculoRepo,
		movimentacaoUC:  movimentacaoUC,
	}
}

// Concluir marca o agendamento como concluído e baixa o estoque dos vínculos
// com baixa automática (origem "Conclusão de atendimento").
func (uc *ConcluirAgendamentoUseCase) Concluir(ctx context.Context, usuarioID, agendamentoID string) (*dto.ConcluirAgendamentoResponse, error) {
	if agendamentoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	a, err := uc.agendamentoRepo.GetByID(agendamentoID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if a.Status == entity.AgendamentoConcluido {
		return nil, domain.ErrConflito
	}
	if a.Status == entity.AgendamentoCancelado {
		return nil, domain.ErrConflito
	}

	// Vínculos lidos fora da tx: são configuração, não estado de estoque.
	vinculos, err := uc.vinculoRepo.ListByServico(a.ServicoID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var baixas []dto.BaixaResponse
	err = uc.txRunner.RunAgenda(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		agendamentoRepo repository.AgendamentoRepository,
	) error {
		baixas = baixas[:0]
		for _, v := range vinculos {
			if !v.BaixaAutomatica {
				continue
			}
			novaQtd, err := uc.movimentacaoUC.RegistrarSaidaEmTx(
				movRepo, produtoRepo,
				v.ProdutoID, v.QuantidadeUso,
				entity.OrigemConclusao, usuarioID, now,
			)
			if err != nil {
				if errors.Is(err, domain.ErrEstoqueInsuficiente) && !v.Obrigatorio {
					baixas = append(baixas, dto.BaixaResponse{
						ProdutoID:  v.ProdutoID,
						Quantidade: v.QuantidadeUso,
						Ignorada:   true,
					})
					continue
				}
				return err
			}
			baixas = append(baixas, dto.BaixaResponse{
				ProdutoID:       v.ProdutoID,
				Quantidade:      v.QuantidadeUso,
				QuantidadeAtual: novaQtd,
			})
		}
		a.Status = entity.AgendamentoConcluido
		a.UpdatedAt = now
		return agendamentoRepo.Update(a)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConcluirAgendamentoResponse{
		ID:            a.ID,
		Status:        a.Status,
		BaixasEstoque: baixas,
	}, nil
}
