package entity

import "time"

// LoteProduto é um lote de produto com mesma validade, mantido para rastreabilidade.
// Criado apenas quando um produto com validade recebe entrada inicial positiva;
// não participa da aritmética de quantidade.
type LoteProduto struct {
	ID         string
	ProdutoID  string
	Codigo     string // determinístico sobre o instante de criação (LOTE-YYYYMMDDHHMMSS)
	Validade   time.Time
	Quantidade int
	CreatedAt  time.Time
}
