package entity

import "time"

// VinculoServicoProduto declara que a execução de um serviço consome uma
// quantidade de um produto. Único por par (serviço, produto).
type VinculoServicoProduto struct {
	ID              string
	ServicoID       string
	ProdutoID       string
	QuantidadeUso   int  // unidades consumidas por atendimento
	Obrigatorio     bool // sem estoque suficiente, a conclusão do atendimento é bloqueada
	BaixaAutomatica bool // consome estoque ao concluir o atendimento
	Observacoes     string
	CreatedAt       time.Time
}
