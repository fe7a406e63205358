package usecase

import (
	"strings"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ConfiguracaoUseCase acesso ao armazenamento chave/valor de configurações
// mutáveis (ex.: capacidade máxima da agenda). Sempre por chave explícita.
type ConfiguracaoUseCase struct {
	repo repository.ConfiguracaoRepository
}

// NewConfiguracaoUseCase constrói o caso de uso.
func NewConfiguracaoUseCase(repo repository.ConfiguracaoRepository) *ConfiguracaoUseCase {
	return &ConfiguracaoUseCase{repo: repo}
}

// Obter devolve a configuração da chave.
func (uc *ConfiguracaoUseCase) Obter(chave string) (*dto.ConfiguracaoResponse, error) {
	chave = strings.TrimSpace(chave)
	if chave == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c, err := uc.repo.Get(chave)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return &dto.ConfiguracaoResponse{Chave: c.Chave, Valor: c.Valor}, nil
}

// Definir grava (upsert) o valor da chave.
func (uc *ConfiguracaoUseCase) Definir(chave, valor string) error {
	chave = strings.TrimSpace(chave)
	if chave == "" {
		return domain.ErrEntradaInvalida
	}
	return uc.repo.Set(chave, valor)
}
