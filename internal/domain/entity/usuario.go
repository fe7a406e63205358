package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin        = "admin"
	RoleRecepcao     = "recepcao"
	RoleProfissional = "profissional"
)

// Usuario é uma conta de acesso ao sistema.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Role      string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
