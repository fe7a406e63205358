package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cadastra um fornecedor.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	f := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      strings.TrimSpace(in.Nome),
		Contato:   in.Contato,
		Email:     in.Email,
		Telefone:  in.Telefone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Atualizar aplica apenas os campos presentes.
func (uc *FornecedorUseCase) Atualizar(id string, in dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, domain.ErrEntradaInvalida
		}
		f.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Contato != nil {
		f.Contato = *in.Contato
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.Telefone != nil {
		f.Telefone = *in.Telefone
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Listar devolve todos os fornecedores.
func (uc *FornecedorUseCase) Listar() ([]dto.FornecedorResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(lista))
	for _, f := range lista {
		out = append(out, *toFornecedorResponse(f))
	}
	return out, nil
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		Contato:  f.Contato,
		Email:    f.Email,
		Telefone: f.Telefone,
	}
}
