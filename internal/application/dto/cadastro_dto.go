package dto

import "github.com/shopspring/decimal"

// CriarServicoRequest corpo de POST /api/services.
type CriarServicoRequest struct {
	Nome               string          `json:"nome"`
	Descricao          string          `json:"descricao"`
	Preco              decimal.Decimal `json:"preco"`
	DuracaoMinutos     int             `json:"duracao_minutos"`
	ComissaoPercentual decimal.Decimal `json:"comissao_percentual"`
}

// AtualizarServicoRequest atualização parcial de serviço.
type AtualizarServicoRequest struct {
	Nome               *string          `json:"nome"`
	Descricao          *string          `json:"descricao"`
	Preco              *decimal.Decimal `json:"preco"`
	DuracaoMinutos     *int             `json:"duracao_minutos"`
	ComissaoPercentual *decimal.Decimal `json:"comissao_percentual"`
	Ativo              *bool            `json:"ativo"`
}

// ServicoResponse serviço persistido.
type ServicoResponse struct {
	ID                 string          `json:"id"`
	Nome               string          `json:"nome"`
	Descricao          string          `json:"descricao,omitempty"`
	Preco              decimal.Decimal `json:"preco"`
	DuracaoMinutos     int             `json:"duracao_minutos"`
	ComissaoPercentual decimal.Decimal `json:"comissao_percentual"`
	Ativo              bool            `json:"ativo"`
}

// CriarProfissionalRequest corpo de POST /api/professionals.
type CriarProfissionalRequest struct {
	Nome               string          `json:"nome"`
	Email              string          `json:"email"`
	Telefone           string          `json:"telefone"`
	ComissaoPercentual decimal.Decimal `json:"comissao_percentual"`
}

// AtualizarProfissionalRequest atualização parcial de profissional.
type AtualizarProfissionalRequest struct {
	Nome               *string          `json:"nome"`
	Email              *string          `json:"email"`
	Telefone           *string          `json:"telefone"`
	ComissaoPercentual *decimal.Decimal `json:"comissao_percentual"`
	Ativo              *bool            `json:"ativo"`
}

// ProfissionalResponse profissional persistido. O token do feed ICS só é
// exposto aqui, para o administrador montar a URL da agenda.
type ProfissionalResponse struct {
	ID                 string          `json:"id"`
	Nome               string          `json:"nome"`
	Email              string          `json:"email,omitempty"`
	Telefone           string          `json:"telefone,omitempty"`
	ComissaoPercentual decimal.Decimal `json:"comissao_percentual"`
	TokenAgenda        string          `json:"token_agenda"`
	Ativo              bool            `json:"ativo"`
}

// CriarFornecedorRequest corpo de POST /api/suppliers.
type CriarFornecedorRequest struct {
	Nome     string `json:"nome"`
	Contato  string `json:"contato"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// AtualizarFornecedorRequest atualização parcial de fornecedor.
type AtualizarFornecedorRequest struct {
	Nome     *string `json:"nome"`
	Contato  *string `json:"contato"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

// FornecedorResponse fornecedor persistido.
type FornecedorResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Contato  string `json:"contato,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

// ConfiguracaoResponse par chave/valor de configuração.
type ConfiguracaoResponse struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
}

// AtualizarConfiguracaoRequest corpo de PUT /api/settings/:chave.
type AtualizarConfiguracaoRequest struct {
	Valor string `json:"valor"`
}
