package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
	MovimentacaoAjuste  = "ajuste"
)

// Origens padrão de movimentação.
const (
	OrigemCadastro  = "Cadastro"
	OrigemEsgotar   = "Esgotar"
	OrigemConclusao = "Conclusão de atendimento"
)

// MovimentacaoEstoque é um registro append-only do razão de estoque.
// Invariante: a soma com sinal das movimentações de um produto, aplicada em ordem
// de criação a partir de zero, é igual à QuantidadeAtual do produto. A aplicação
// garante isso atualizando a quantidade na mesma transação do insert.
type MovimentacaoEstoque struct {
	ID         string
	ProdutoID  string
	Tipo       string     // entrada, saida, ajuste
	Quantidade int        // positiva para entrada/saida; ajuste carrega o próprio sinal
	Origem     string     // texto livre: "Cadastro", "Esgotar", nota de ajuste, etc.
	Validade   *time.Time // snapshot da validade do produto no momento do registro
	CreatedAt  time.Time
	CreatedBy  string
}

// Delta devolve a variação com sinal aplicada pela movimentação.
func (m *MovimentacaoEstoque) Delta() int {
	switch m.Tipo {
	case MovimentacaoEntrada:
		return m.Quantidade
	case MovimentacaoSaida:
		return -m.Quantidade
	default: // ajuste: a quantidade já carrega o sinal
		return m.Quantidade
	}
}
