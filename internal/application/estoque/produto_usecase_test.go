package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
)

func novoProdutoUC(tx *memTxRunner) *estoque.ProdutoUseCase {
	return estoque.NewProdutoUseCase(tx, tx.produtos, tx.movs)
}

func TestCadastrar_ComQuantidadeInicialGeraMovimentacaoDeEntrada(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	resp, err := uc.Cadastrar(context.Background(), "user-1", dto.CadastrarProdutoRequest{
		Nome:            "Esmalte Vermelho",
		QuantidadeAtual: 5,
		PrecoCusto:      decimal.NewFromFloat(8.50),
		PrecoVenda:      decimal.NewFromFloat(15.00),
	})

	require.NoError(t, err)
	produto := tx.produtos.produtos[resp.ID]
	require.NotNil(t, produto)
	assert.Equal(t, 5, produto.QuantidadeAtual)

	require.Len(t, tx.movs.movs, 1)
	mov := tx.movs.movs[0]
	assert.Equal(t, entity.MovimentacaoEntrada, mov.Tipo)
	assert.Equal(t, 5, mov.Quantidade)
	assert.Equal(t, entity.OrigemCadastro, mov.Origem)
	assert.Equal(t, "user-1", mov.CreatedBy)
	assert.Empty(t, tx.lotes.lotes, "sem validade não há lote")
}

func TestCadastrar_ComValidadeCriaLote(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	resp, err := uc.Cadastrar(context.Background(), "user-1", dto.CadastrarProdutoRequest{
		Nome:            "Tintura 6.0",
		QuantidadeAtual: 5,
		PrecoVenda:      decimal.NewFromInt(30),
		Validade:        "2027-06-30",
	})

	require.NoError(t, err)
	require.Len(t, tx.lotes.lotes, 1)
	lote := tx.lotes.lotes[0]
	assert.Equal(t, resp.ID, lote.ProdutoID)
	assert.Equal(t, 5, lote.Quantidade)
	assert.Equal(t, time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC), lote.Validade)
	assert.Regexp(t, `^LOTE-\d{14}$`, lote.Codigo)
}

func TestCadastrar_QuantidadeZeroNaoGeraMovimentacaoNemLote(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	_, err := uc.Cadastrar(context.Background(), "user-1", dto.CadastrarProdutoRequest{
		Nome:       "Acetona",
		PrecoVenda: decimal.NewFromInt(10),
		Validade:   "2027-01-01",
	})

	require.NoError(t, err)
	assert.Empty(t, tx.movs.movs)
	assert.Empty(t, tx.lotes.lotes, "lote só existe quando há estoque inicial")
}

func TestCadastrar_RejeicoesDeValidacao(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	casos := []struct {
		nome string
		req  dto.CadastrarProdutoRequest
	}{
		{"nome vazio", dto.CadastrarProdutoRequest{Nome: "   "}},
		{"venda menor que custo", dto.CadastrarProdutoRequest{
			Nome: "Creme", PrecoCusto: decimal.NewFromInt(20), PrecoVenda: decimal.NewFromInt(10),
		}},
		{"quantidade negativa", dto.CadastrarProdutoRequest{Nome: "Creme", QuantidadeAtual: -1}},
		{"minimo negativo", dto.CadastrarProdutoRequest{Nome: "Creme", QuantidadeMinima: -1}},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := uc.Cadastrar(context.Background(), "user-1", tc.req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
	assert.Empty(t, tx.produtos.produtos, "nenhum produto deve ser criado")
}

func TestCadastrar_ValidadeInvalidaEhDescartadaEmSilencio(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	resp, err := uc.Cadastrar(context.Background(), "user-1", dto.CadastrarProdutoRequest{
		Nome:            "Máscara Capilar",
		QuantidadeAtual: 2,
		PrecoVenda:      decimal.NewFromInt(25),
		Validade:        "30/06/2027", // DD/MM/YYYY não é aceito
	})

	require.NoError(t, err, "validade inválida não rejeita o cadastro")
	assert.Nil(t, tx.produtos.produtos[resp.ID].Validade)
	assert.Empty(t, tx.lotes.lotes)
}

func TestEsgotar_ZeraOEstoqueComSaidaUnica(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 8)
	uc := novoProdutoUC(tx)

	resp, err := uc.Esgotar(context.Background(), "user-1", "p1")

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.False(t, resp.JaZerado)
	assert.Equal(t, 0, tx.produtos.produtos["p1"].QuantidadeAtual)

	require.Len(t, tx.movs.movs, 1)
	mov := tx.movs.movs[0]
	assert.Equal(t, entity.MovimentacaoSaida, mov.Tipo)
	assert.Equal(t, 8, mov.Quantidade)
	assert.Equal(t, entity.OrigemEsgotar, mov.Origem)
}

func TestEsgotar_ProdutoJaZeradoEhNoOp(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 0)
	uc := novoProdutoUC(tx)

	resp, err := uc.Esgotar(context.Background(), "user-1", "p1")

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.True(t, resp.JaZerado)
	assert.Empty(t, tx.movs.movs, "produto zerado não gera movimentação")
}

func TestEsgotar_ProdutoInexistente(t *testing.T) {
	tx := newMemTxRunner()
	uc := novoProdutoUC(tx)

	_, err := uc.Esgotar(context.Background(), "user-1", "nao-existe")

	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestListar_IncluiFlagAbaixoDoMinimo(t *testing.T) {
	tx := newMemTxRunner()
	tx.produtos.produtos["p1"] = &entity.Produto{ID: "p1", Nome: "A", QuantidadeAtual: 2, QuantidadeMinima: 5}
	tx.produtos.produtos["p2"] = &entity.Produto{ID: "p2", Nome: "B", QuantidadeAtual: 10, QuantidadeMinima: 5}
	uc := novoProdutoUC(tx)

	out, err := uc.Listar(50, 0)

	require.NoError(t, err)
	require.Len(t, out, 2)
	porID := map[string]dto.ProdutoResponse{}
	for _, p := range out {
		porID[p.ID] = p
	}
	assert.True(t, porID["p1"].AbaixoDoMinimo)
	assert.False(t, porID["p2"].AbaixoDoMinimo)
}

func TestNormalizarData(t *testing.T) {
	casos := []struct {
		entrada string
		espera  *time.Time
	}{
		{"2027-06-30", ptrTime(time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC))},
		{"06/30/2027", ptrTime(time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC))},
		{"  2027-06-30  ", ptrTime(time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC))},
		{"", nil},
		{"30/06/2027", nil}, // DD/MM/YYYY não é um dos formatos aceitos
		{"junho de 2027", nil},
	}
	for _, tc := range casos {
		got := estoque.NormalizarData(tc.entrada)
		if tc.espera == nil {
			assert.Nil(t, got, "entrada %q", tc.entrada)
		} else {
			require.NotNil(t, got, "entrada %q", tc.entrada)
			assert.True(t, got.Equal(*tc.espera), "entrada %q: esperava %v, veio %v", tc.entrada, tc.espera, got)
		}
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
