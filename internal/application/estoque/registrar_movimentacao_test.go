package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
)

func seedProduto(tx *memTxRunner, id string, quantidade int) {
	now := time.Now()
	tx.produtos.produtos[id] = &entity.Produto{
		ID:              id,
		Nome:            "Shampoo Profissional 1L",
		QuantidadeAtual: quantidade,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestRegistrar_EntradaSomaAoEstoque(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 10)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	resp, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 5, Origem: "Compra",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.QuantidadeAtual)
	assert.NotEmpty(t, resp.ID, "movimentação deve ganhar id")
	assert.Equal(t, 15, tx.produtos.produtos["p1"].QuantidadeAtual)
}

func TestRegistrar_SaidaSubtraiDoEstoque(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 10)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	resp, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoSaida, Quantidade: 4, Origem: "Uso interno",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.QuantidadeAtual)
}

func TestRegistrar_AjusteNegativoCarregaOSinal(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 10)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	resp, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoAjuste, Quantidade: -3, Origem: "Inventário",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.QuantidadeAtual)
}

func TestRegistrar_SaidaMaiorQueEstoqueNaoAlteraNada(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 3)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	_, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoSaida, Quantidade: 5, Origem: "Uso interno",
	})

	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Equal(t, 3, tx.produtos.produtos["p1"].QuantidadeAtual, "quantidade não deve mudar")
	assert.Empty(t, tx.movs.movs, "nenhuma movimentação deve ser gravada")
}

func TestRegistrar_AjusteNuncaDeixaEstoqueNegativo(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 2)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	_, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoAjuste, Quantidade: -10, Origem: "Inventário",
	})

	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Equal(t, 2, tx.produtos.produtos["p1"].QuantidadeAtual)
}

func TestRegistrar_ProdutoInexistente(t *testing.T) {
	tx := newMemTxRunner()
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	_, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "nao-existe", Tipo: entity.MovimentacaoEntrada, Quantidade: 1,
	})

	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRegistrar_ValidacaoDeEntrada(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 10)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	casos := []struct {
		nome  string
		input estoque.MovimentacaoInput
	}{
		{"sem produto", estoque.MovimentacaoInput{Tipo: entity.MovimentacaoEntrada, Quantidade: 1}},
		{"tipo desconhecido", estoque.MovimentacaoInput{ProdutoID: "p1", Tipo: "transferencia", Quantidade: 1}},
		{"entrada com quantidade zero", estoque.MovimentacaoInput{ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 0}},
		{"saida com quantidade negativa", estoque.MovimentacaoInput{ProdutoID: "p1", Tipo: entity.MovimentacaoSaida, Quantidade: -1}},
		{"ajuste com quantidade zero", estoque.MovimentacaoInput{ProdutoID: "p1", Tipo: entity.MovimentacaoAjuste, Quantidade: 0}},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := uc.Registrar(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
	assert.Empty(t, tx.movs.movs, "entradas inválidas não geram movimentações")
}

// A soma com sinal de todas as movimentações, aplicada a partir de zero, deve
// bater com a quantidade final do produto após uma sequência de operações.
func TestRegistrar_SomaDosDeltasIgualQuantidadeFinal(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 0)
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)
	ctx := context.Background()

	passos := []estoque.MovimentacaoInput{
		{ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 20},
		{ProdutoID: "p1", Tipo: entity.MovimentacaoSaida, Quantidade: 7},
		{ProdutoID: "p1", Tipo: entity.MovimentacaoAjuste, Quantidade: -3},
		{ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 4},
		{ProdutoID: "p1", Tipo: entity.MovimentacaoAjuste, Quantidade: 1},
	}
	for _, in := range passos {
		_, err := uc.Registrar(ctx, in)
		require.NoError(t, err)
	}

	assert.Equal(t, 15, tx.produtos.produtos["p1"].QuantidadeAtual)
	assert.Equal(t, tx.produtos.produtos["p1"].QuantidadeAtual, tx.movs.somaDeltas("p1"),
		"soma dos deltas deve igualar a quantidade atual")
}

func TestRegistrar_FalhaNoInsertDesfazAtualizacao(t *testing.T) {
	tx := newMemTxRunner()
	seedProduto(tx, "p1", 10)
	tx.movs.falharProxima = assert.AnError
	uc := estoque.NewRegistrarMovimentacaoUseCase(tx)

	_, err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 5,
	})

	require.Error(t, err)
	assert.Equal(t, 10, tx.produtos.produtos["p1"].QuantidadeAtual, "rollback deve preservar a quantidade")
}
