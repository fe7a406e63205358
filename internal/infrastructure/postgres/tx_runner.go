package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ orcamento.OrcamentoTxRunner = (*TxRunner)(nil)
var _ agenda.AgendaTxRunner = (*TxRunner)(nil)

type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Usado pelo razão de estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	loteRepo repository.LoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoRepository(tx)
	produtoRepo := NewProdutoRepository(tx)
	loteRepo := NewLoteRepository(tx)

	if err := fn(movRepo, produtoRepo, loteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrcamento inicia uma transação com o repositório de orçamentos
// (cabeçalho + itens como unidade atômica).
func (r *TxRunner) RunOrcamento(ctx context.Context, fn func(repo repository.OrcamentoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrcamentoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAgenda inicia uma transação para a conclusão de atendimento: status do
// agendamento e baixas de estoque na mesma tx.
func (r *TxRunner) RunAgenda(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	agendamentoRepo repository.AgendamentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoRepository(tx)
	produtoRepo := NewProdutoRepository(tx)
	agendamentoRepo := NewAgendamentoRepository(tx)

	if err := fn(movRepo, produtoRepo, agendamentoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
