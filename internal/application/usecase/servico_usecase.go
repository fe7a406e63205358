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

// ServicoUseCase CRUD de serviços do salão.
type ServicoUseCase struct {
	repo repository.ServicoRepository
}

// NewServicoUseCase constrói o caso de uso.
func NewServicoUseCase(repo repository.ServicoRepository) *ServicoUseCase {
	return &ServicoUseCase{repo: repo}
}

// Criar cria um serviço ativo.
func (uc *ServicoUseCase) Criar(in dto.CriarServicoRequest) (*dto.ServicoResponse, error) {
	if strings.TrimSpace(in.Nome) == "" || in.Preco.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.ComissaoPercentual.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	s := &entity.Servico{
		ID:                 uuid.New().String(),
		Nome:               strings.TrimSpace(in.Nome),
		Descricao:          in.Descricao,
		Preco:              in.Preco,
		DuracaoMinutos:     in.DuracaoMinutos,
		ComissaoPercentual: in.ComissaoPercentual,
		Ativo:              true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toServicoResponse(s), nil
}

// Atualizar aplica apenas os campos presentes.
func (uc *ServicoUseCase) Atualizar(id string, in dto.AtualizarServicoRequest) (*dto.ServicoResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, domain.ErrEntradaInvalida
		}
		s.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Descricao != nil {
		s.Descricao = *in.Descricao
	}
	if in.Preco != nil {
		if in.Preco.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.Preco = *in.Preco
	}
	if in.DuracaoMinutos != nil {
		s.DuracaoMinutos = *in.DuracaoMinutos
	}
	if in.ComissaoPercentual != nil {
		if in.ComissaoPercentual.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.ComissaoPercentual = *in.ComissaoPercentual
	}
	if in.Ativo != nil {
		s.Ativo = *in.Ativo
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toServicoResponse(s), nil
}

// Listar devolve os serviços; somenteAtivos filtra os inativos.
func (uc *ServicoUseCase) Listar(somenteAtivos bool) ([]dto.ServicoResponse, error) {
	lista, err := uc.repo.List(somenteAtivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServicoResponse, 0, len(lista))
	for _, s := range lista {
		out = append(out, *toServicoResponse(s))
	}
	return out, nil
}

func toServicoResponse(s *entity.Servico) *dto.ServicoResponse {
	return &dto.ServicoResponse{
		ID:                 s.ID,
		Nome:               s.Nome,
		Descricao:          s.Descricao,
		Preco:              s.Preco,
		DuracaoMinutos:     s.DuracaoMinutos,
		ComissaoPercentual: s.ComissaoPercentual,
		Ativo:              s.Ativo,
	}
}
