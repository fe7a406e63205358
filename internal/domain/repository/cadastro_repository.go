package repository

import "github.com/salaobella/salao-api/internal/domain/entity"

// ServicoRepository porta de persistência de serviços.
type ServicoRepository interface {
	Create(s *entity.Servico) error
	GetByID(id string) (*entity.Servico, error)
	Update(s *entity.Servico) error
	List(somenteAtivos bool) ([]*entity.Servico, error)
}

// ProfissionalRepository porta de persistência de profissionais.
type ProfissionalRepository interface {
	Create(p *entity.Profissional) error
	GetByID(id string) (*entity.Profissional, error)
	Update(p *entity.Profissional) error
	List(somenteAtivos bool) ([]*entity.Profissional, error)
}

// FornecedorRepository porta de persistência de fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	List() ([]*entity.Fornecedor, error)
}

// UsuarioRepository porta de contas de acesso.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}

// ConfiguracaoRepository porta do armazenamento chave/valor de configurações.
type ConfiguracaoRepository interface {
	Get(chave string) (*entity.Configuracao, error)
	Set(chave, valor string) error
}
