package entity

import "time"

// Fornecedor representa um fornecedor de produtos do salão.
type Fornecedor struct {
	ID        string
	Nome      string
	Contato   string
	Email     string
	Telefone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
