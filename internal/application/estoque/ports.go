package estoque

import (
	"context"

	"github.com/salaobella/salao-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do razão de estoque:
// movimentação e atualização de quantidade nunca divergem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		loteRepo repository.LoteRepository,
	) error) error
}
