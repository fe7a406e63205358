package agenda

import (
	"context"

	"github.com/salaobella/salao-api/internal/domain/repository"
)

// AgendaTxRunner executa a conclusão de atendimento em uma transação: a
// mudança de status e as baixas de estoque dos produtos vinculados são
// atômicas (falha em baixa obrigatória desfaz tudo).
type AgendaTxRunner interface {
	RunAgenda(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		agendamentoRepo repository.AgendamentoRepository,
	) error) error
}
