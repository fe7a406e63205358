package financeiro_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/financeiro"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
)

type memContaPagarRepo struct {
	contas map[string]*entity.ContaPagar
}

func newMemContaPagarRepo() *memContaPagarRepo {
	return &memContaPagarRepo{contas: make(map[string]*entity.ContaPagar)}
}

func (r *memContaPagarRepo) CreateInBatch(contas []*entity.ContaPagar) error {
	for _, c := range contas {
		cp := *c
		r.contas[c.ID] = &cp
	}
	return nil
}

func (r *memContaPagarRepo) GetByID(id string) (*entity.ContaPagar, error) {
	c, ok := r.contas[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memContaPagarRepo) UpdateStatus(id, status string, dataPagamento time.Time) error {
	c, ok := r.contas[id]
	if !ok {
		return domain.ErrNaoEncontrado
	}
	c.Status = status
	if status == entity.ContaPaga {
		c.DataPagamento = &dataPagamento
	} else {
		c.DataPagamento = nil
	}
	return nil
}

func (r *memContaPagarRepo) List(status string, inicio, fim time.Time) ([]*entity.ContaPagar, error) {
	var out []*entity.ContaPagar
	for _, c := range r.contas {
		if status != "" && c.Status != status {
			continue
		}
		if c.Vencimento.Before(inicio) || !c.Vencimento.Before(fim) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func TestCriarConta_AvulsaGeraLinhaUnica(t *testing.T) {
	repo := newMemContaPagarRepo()
	uc := financeiro.NewContasPagarUseCase(repo)

	out, err := uc.Criar(dto.CriarContaPagarRequest{
		Descricao:  "Conta de luz",
		Categoria:  "Utilidades",
		Valor:      decimal.NewFromFloat(230.50),
		Vencimento: "2026-09-15",
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	c := out[0]
	assert.Equal(t, "Conta de luz", c.Descricao)
	assert.Equal(t, entity.ContaPendente, c.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), c.Vencimento)
	assert.False(t, c.Recorrente)
	assert.Zero(t, c.ParcelaNumero)
	assert.Empty(t, c.SerieID)
}

func TestCriarConta_RecorrenteGeraSerieMensalCompleta(t *testing.T) {
	repo := newMemContaPagarRepo()
	uc := financeiro.NewContasPagarUseCase(repo)

	out, err := uc.Criar(dto.CriarContaPagarRequest{
		Descricao:  "Aluguel",
		Valor:      decimal.NewFromInt(3000),
		Vencimento: "2026-09-05",
		Recorrente: true,
		Parcelas:   3,
	})

	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Aluguel (1/3)", out[0].Descricao)
	assert.Equal(t, "Aluguel (2/3)", out[1].Descricao)
	assert.Equal(t, "Aluguel (3/3)", out[2].Descricao)

	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), out[0].Vencimento)
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), out[1].Vencimento)
	assert.Equal(t, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC), out[2].Vencimento)

	require.NotEmpty(t, out[0].SerieID)
	assert.Equal(t, out[0].SerieID, out[1].SerieID, "parcelas compartilham a série")
	assert.Equal(t, out[0].SerieID, out[2].SerieID)
	assert.Equal(t, 1, out[0].ParcelaNumero)
	assert.Equal(t, 3, out[2].ParcelaNumero)
	assert.Equal(t, 3, out[0].ParcelaTotal)
}

func TestCriarConta_Validacoes(t *testing.T) {
	uc := financeiro.NewContasPagarUseCase(newMemContaPagarRepo())

	casos := []struct {
		nome string
		req  dto.CriarContaPagarRequest
	}{
		{"sem descrição", dto.CriarContaPagarRequest{Valor: decimal.NewFromInt(10), Vencimento: "2026-09-15"}},
		{"valor zero", dto.CriarContaPagarRequest{Descricao: "Luz", Vencimento: "2026-09-15"}},
		{"valor negativo", dto.CriarContaPagarRequest{Descricao: "Luz", Valor: decimal.NewFromInt(-5), Vencimento: "2026-09-15"}},
		{"vencimento fora do ISO", dto.CriarContaPagarRequest{Descricao: "Luz", Valor: decimal.NewFromInt(10), Vencimento: "15/09/2026"}},
		{"recorrente com uma parcela", dto.CriarContaPagarRequest{
			Descricao: "Aluguel", Valor: decimal.NewFromInt(3000), Vencimento: "2026-09-05", Recorrente: true, Parcelas: 1,
		}},
		{"recorrente sem parcelas", dto.CriarContaPagarRequest{
			Descricao: "Aluguel", Valor: decimal.NewFromInt(3000), Vencimento: "2026-09-05", Recorrente: true,
		}},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := uc.Criar(tc.req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

func TestAtualizarStatus_PagoGravaDataDePagamento(t *testing.T) {
	repo := newMemContaPagarRepo()
	uc := financeiro.NewContasPagarUseCase(repo)
	out, err := uc.Criar(dto.CriarContaPagarRequest{
		Descricao: "Luz", Valor: decimal.NewFromInt(100), Vencimento: "2026-09-15",
	})
	require.NoError(t, err)
	id := out[0].ID

	err = uc.AtualizarStatus(id, dto.AtualizarStatusContaRequest{Status: entity.ContaPaga, DataPagamento: "2026-09-10"})

	require.NoError(t, err)
	conta := repo.contas[id]
	assert.Equal(t, entity.ContaPaga, conta.Status)
	require.NotNil(t, conta.DataPagamento)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), *conta.DataPagamento)
}

func TestAtualizarStatus_VoltarParaPendenteZeraAData(t *testing.T) {
	repo := newMemContaPagarRepo()
	uc := financeiro.NewContasPagarUseCase(repo)
	out, err := uc.Criar(dto.CriarContaPagarRequest{
		Descricao: "Luz", Valor: decimal.NewFromInt(100), Vencimento: "2026-09-15",
	})
	require.NoError(t, err)
	id := out[0].ID

	require.NoError(t, uc.AtualizarStatus(id, dto.AtualizarStatusContaRequest{Status: entity.ContaPaga}))
	require.NoError(t, uc.AtualizarStatus(id, dto.AtualizarStatusContaRequest{Status: entity.ContaPendente}))

	conta := repo.contas[id]
	assert.Equal(t, entity.ContaPendente, conta.Status)
	assert.Nil(t, conta.DataPagamento)
}

func TestAtualizarStatus_ContaInexistenteEStatusInvalido(t *testing.T) {
	uc := financeiro.NewContasPagarUseCase(newMemContaPagarRepo())

	err := uc.AtualizarStatus("nao-existe", dto.AtualizarStatusContaRequest{Status: entity.ContaPaga})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	err = uc.AtualizarStatus("qualquer", dto.AtualizarStatusContaRequest{Status: "ATRASADO"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestListarContas_FiltraPorStatus(t *testing.T) {
	repo := newMemContaPagarRepo()
	uc := financeiro.NewContasPagarUseCase(repo)
	out, err := uc.Criar(dto.CriarContaPagarRequest{
		Descricao: "Luz", Valor: decimal.NewFromInt(100), Vencimento: "2026-09-15",
	})
	require.NoError(t, err)
	_, err = uc.Criar(dto.CriarContaPagarRequest{
		Descricao: "Água", Valor: decimal.NewFromInt(80), Vencimento: "2026-09-20",
	})
	require.NoError(t, err)
	require.NoError(t, uc.AtualizarStatus(out[0].ID, dto.AtualizarStatusContaRequest{Status: entity.ContaPaga}))

	inicio := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	pagas, err := uc.Listar(entity.ContaPaga, inicio, fim)
	require.NoError(t, err)
	require.Len(t, pagas, 1)
	assert.Equal(t, "Luz", pagas[0].Descricao)

	_, err = uc.Listar("VENCIDO", inicio, fim)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
