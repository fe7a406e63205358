package agenda_test

import (
	"context"
	"time"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// Repositórios em memória para os testes da agenda. O memAgendaTxRunner emula
// a atomicidade da conclusão com snapshot e restauração em caso de erro.

type memAgendamentoRepo struct {
	agendamentos map[string]*entity.Agendamento
}

func newMemAgendamentoRepo() *memAgendamentoRepo {
	return &memAgendamentoRepo{agendamentos: make(map[string]*entity.Agendamento)}
}

func (r *memAgendamentoRepo) Create(a *entity.Agendamento) error {
	cp := *a
	r.agendamentos[a.ID] = &cp
	return nil
}

func (r *memAgendamentoRepo) GetByID(id string) (*entity.Agendamento, error) {
	a, ok := r.agendamentos[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAgendamentoRepo) Update(a *entity.Agendamento) error {
	if _, ok := r.agendamentos[a.ID]; !ok {
		return domain.ErrNaoEncontrado
	}
	cp := *a
	r.agendamentos[a.ID] = &cp
	return nil
}

func (r *memAgendamentoRepo) Delete(id string) error {
	delete(r.agendamentos, id)
	return nil
}

func (r *memAgendamentoRepo) List(inicio, fim time.Time, profissionalID string) ([]*entity.Agendamento, error) {
	var out []*entity.Agendamento
	for _, a := range r.agendamentos {
		if a.Inicio.Before(inicio) || !a.Inicio.Before(fim) {
			continue
		}
		if profissionalID != "" && a.ProfissionalID != profissionalID {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAgendamentoRepo) ListAgendaProfissional(profissionalID string) ([]*entity.Agendamento, error) {
	var out []*entity.Agendamento
	for _, a := range r.agendamentos {
		if a.ProfissionalID == profissionalID && !a.Encerrado() {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memProfissionalRepo struct {
	profissionais map[string]*entity.Profissional
}

func newMemProfissionalRepo() *memProfissionalRepo {
	return &memProfissionalRepo{profissionais: make(map[string]*entity.Profissional)}
}

func (r *memProfissionalRepo) Create(p *entity.Profissional) error {
	cp := *p
	r.profissionais[p.ID] = &cp
	return nil
}

func (r *memProfissionalRepo) GetByID(id string) (*entity.Profissional, error) {
	p, ok := r.profissionais[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProfissionalRepo) Update(p *entity.Profissional) error {
	cp := *p
	r.profissionais[p.ID] = &cp
	return nil
}

func (r *memProfissionalRepo) List(somenteAtivos bool) ([]*entity.Profissional, error) {
	var out []*entity.Profissional
	for _, p := range r.profissionais {
		if somenteAtivos && !p.Ativo {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memServicoRepo struct {
	servicos map[string]*entity.Servico
}

func newMemServicoRepo() *memServicoRepo {
	return &memServicoRepo{servicos: make(map[string]*entity.Servico)}
}

func (r *memServicoRepo) Create(s *entity.Servico) error {
	cp := *s
	r.servicos[s.ID] = &cp
	return nil
}

func (r *memServicoRepo) GetByID(id string) (*entity.Servico, error) {
	s, ok := r.servicos[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memServicoRepo) Update(s *entity.Servico) error {
	cp := *s
	r.servicos[s.ID] = &cp
	return nil
}

func (r *memServicoRepo) List(somenteAtivos bool) ([]*entity.Servico, error) {
	var out []*entity.Servico
	for _, s := range r.servicos {
		if somenteAtivos && !s.Ativo {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type memVinculoRepo struct {
	vinculos []*entity.VinculoServicoProduto
}

func (r *memVinculoRepo) Create(v *entity.VinculoServicoProduto) error {
	cp := *v
	r.vinculos = append(r.vinculos, &cp)
	return nil
}

func (r *memVinculoRepo) GetByID(id string) (*entity.VinculoServicoProduto, error) {
	for _, v := range r.vinculos {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memVinculoRepo) Update(v *entity.VinculoServicoProduto) error { return nil }
func (r *memVinculoRepo) Delete(id string) error                       { return nil }

func (r *memVinculoRepo) List() ([]*entity.VinculoServicoProduto, error) {
	return r.vinculos, nil
}

func (r *memVinculoRepo) ListByServico(servicoID string) ([]*entity.VinculoServicoProduto, error) {
	var out []*entity.VinculoServicoProduto
	for _, v := range r.vinculos {
		if v.ServicoID == servicoID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

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

func (r *memProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) { return r.GetByID(id) }

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

func (r *memProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) { return nil, nil }

type memMovimentacaoRepo struct {
	movs []*entity.MovimentacaoEstoque
}

func (r *memMovimentacaoRepo) Create(m *entity.MovimentacaoEstoque) error {
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *memMovimentacaoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	return nil, nil
}

type memAgendaTxRunner struct {
	movs         *memMovimentacaoRepo
	produtos     *memProdutoRepo
	agendamentos *memAgendamentoRepo
}

func (r *memAgendaTxRunner) RunAgenda(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	agendamentoRepo repository.AgendamentoRepository,
) error) error {
	movsAntes := append([]*entity.MovimentacaoEstoque(nil), r.movs.movs...)
	produtosAntes := make(map[string]*entity.Produto, len(r.produtos.produtos))
	for id, p := range r.produtos.produtos {
		cp := *p
		produtosAntes[id] = &cp
	}
	agendamentosAntes := make(map[string]*entity.Agendamento, len(r.agendamentos.agendamentos))
	for id, a := range r.agendamentos.agendamentos {
		cp := *a
		agendamentosAntes[id] = &cp
	}
	if err := fn(r.movs, r.produtos, r.agendamentos); err != nil {
		r.movs.movs = movsAntes
		r.produtos.produtos = produtosAntes
		r.agendamentos.agendamentos = agendamentosAntes
		return err
	}
	return nil
}
