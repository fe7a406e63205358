package financeiro_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/financeiro"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

type fakeFinanceiroRepo struct {
	comissoes []repository.ComissaoResult
	fluxo     []repository.FluxoCaixaMensalResult
}

func (r *fakeFinanceiroRepo) ComissoesPorProfissional(ctx context.Context, inicio, fim time.Time) ([]repository.ComissaoResult, error) {
	return r.comissoes, nil
}

func (r *fakeFinanceiroRepo) FluxoCaixaMensal(ctx context.Context, ano int) ([]repository.FluxoCaixaMensalResult, error) {
	return r.fluxo, nil
}

func TestComissoes_PeriodoInvertidoEhRejeitado(t *testing.T) {
	uc := financeiro.NewComissaoUseCase(&fakeFinanceiroRepo{})

	inicio := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Totais(context.Background(), inicio, fim)

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestComissoes_RepassaOsTotaisDoRepositorio(t *testing.T) {
	repo := &fakeFinanceiroRepo{comissoes: []repository.ComissaoResult{
		{
			ProfissionalID:   "prof-1",
			ProfissionalNome: "Ana Lima",
			Atendimentos:     12,
			ValorServicos:    decimal.NewFromInt(1800),
			ValorComissao:    decimal.NewFromInt(540),
		},
	}}
	uc := financeiro.NewComissaoUseCase(repo)

	inicio := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	out, err := uc.Totais(context.Background(), inicio, fim)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana Lima", out[0].ProfissionalNome)
	assert.Equal(t, 12, out[0].Atendimentos)
	assert.True(t, out[0].ValorComissao.Equal(decimal.NewFromInt(540)))
}

func TestFluxoCaixa_AnoForaDosLimites(t *testing.T) {
	uc := financeiro.NewFluxoCaixaUseCase(&fakeFinanceiroRepo{})

	for _, ano := range []int{1999, 2101, 0, -1} {
		_, err := uc.Mensal(context.Background(), ano)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "ano %d", ano)
	}
}

func TestFluxoCaixa_RepassaOsMesesDoRepositorio(t *testing.T) {
	repo := &fakeFinanceiroRepo{fluxo: []repository.FluxoCaixaMensalResult{
		{Ano: 2026, Mes: 9, Receitas: decimal.NewFromInt(5000), Despesas: decimal.NewFromInt(3200), Saldo: decimal.NewFromInt(1800)},
	}}
	uc := financeiro.NewFluxoCaixaUseCase(repo)

	out, err := uc.Mensal(context.Background(), 2026)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].Mes)
	assert.True(t, out[0].Saldo.Equal(decimal.NewFromInt(1800)))
}
