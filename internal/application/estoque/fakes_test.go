package estoque_test

import (
	"context"
	"sort"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// Repositórios em memória para os testes dos casos de uso. Implementam as
// mesmas portas do Postgres; o memTxRunner emula a atomicidade tirando um
// snapshot antes de fn e restaurando em caso de erro.

// ─────────────────────────── produtos ───────────────────────────

type memProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newMemProdutoRepo() *memProdutoRepo {
	return &memProdutoRepo{produtos: make(map[string]*entity.Produto)}
}

func (r *memProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}

func (r *memProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	if p, ok := r.produtos[id]; ok {
		p.QuantidadeAtual = quantidade
	}
	return nil
}

func (r *memProdutoRepo) Update(p *entity.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ─────────────────────────── movimentações ───────────────────────────

type memMovimentacaoRepo struct {
	movs []*entity.MovimentacaoEstoque
	// falharProxima força erro no próximo Create, para exercitar rollback.
	falharProxima error
}

func (r *memMovimentacaoRepo) Create(m *entity.MovimentacaoEstoque) error {
	if r.falharProxima != nil {
		err := r.falharProxima
		r.falharProxima = nil
		return err
	}
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *memMovimentacaoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	var out []*entity.MovimentacaoEstoque
	for _, m := range r.movs {
		if m.ProdutoID == produtoID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// somaDeltas aplica em ordem os deltas das movimentações de um produto,
// partindo de zero. Deve coincidir com a QuantidadeAtual do produto.
func (r *memMovimentacaoRepo) somaDeltas(produtoID string) int {
	total := 0
	for _, m := range r.movs {
		if m.ProdutoID == produtoID {
			total += m.Delta()
		}
	}
	return total
}

// ─────────────────────────── lotes ───────────────────────────

type memLoteRepo struct {
	lotes []*entity.LoteProduto
}

func (r *memLoteRepo) Create(l *entity.LoteProduto) error {
	cp := *l
	r.lotes = append(r.lotes, &cp)
	return nil
}

func (r *memLoteRepo) ListByProduto(produtoID string) ([]*entity.LoteProduto, error) {
	var out []*entity.LoteProduto
	for _, l := range r.lotes {
		if l.ProdutoID == produtoID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─────────────────────────── tx runner ───────────────────────────

type memTxRunner struct {
	movs     *memMovimentacaoRepo
	produtos *memProdutoRepo
	lotes    *memLoteRepo
}

func newMemTxRunner() *memTxRunner {
	return &memTxRunner{
		movs:     &memMovimentacaoRepo{},
		produtos: newMemProdutoRepo(),
		lotes:    &memLoteRepo{},
	}
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	loteRepo repository.LoteRepository,
) error) error {
	movsAntes := append([]*entity.MovimentacaoEstoque(nil), r.movs.movs...)
	lotesAntes := append([]*entity.LoteProduto(nil), r.lotes.lotes...)
	produtosAntes := make(map[string]*entity.Produto, len(r.produtos.produtos))
	for id, p := range r.produtos.produtos {
		cp := *p
		produtosAntes[id] = &cp
	}
	if err := fn(r.movs, r.produtos, r.lotes); err != nil {
		r.movs.movs = movsAntes
		r.lotes.lotes = lotesAntes
		r.produtos.produtos = produtosAntes
		return err
	}
	return nil
}
