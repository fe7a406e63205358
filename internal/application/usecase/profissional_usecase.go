package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ProfissionalUseCase CRUD de profissionais. Cada profissional recebe no
// cadastro um token aleatório que autentica seu feed iCalendar.
type ProfissionalUseCase struct {
	repo repository.ProfissionalRepository
}

// NewProfissionalUseCase constrói o caso de uso.
func NewProfissionalUseCase(repo repository.ProfissionalRepository) *ProfissionalUseCase {
	return &ProfissionalUseCase{repo: repo}
}

// Criar cria o profissional com token de agenda gerado.
func (uc *ProfissionalUseCase) Criar(in dto.CriarProfissionalRequest) (*dto.ProfissionalResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.ComissaoPercentual.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	token, err := gerarTokenAgenda()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Profissional{
		ID:                 uuid.New().String(),
		Nome:               strings.TrimSpace(in.Nome),
		Email:              in.Email,
		Telefone:           in.Telefone,
		ComissaoPercentual: in.ComissaoPercentual,
		TokenAgenda:        token,
		Ativo:              true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProfissionalResponse(p), nil
}

// Atualizar aplica apenas os campos presentes. O token de agenda não é
// alterável por aqui; use RenovarToken.
func (uc *ProfissionalUseCase) Atualizar(id string, in dto.AtualizarProfissionalRequest) (*dto.ProfissionalResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, domain.ErrEntradaInvalida
		}
		p.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Telefone != nil {
		p.Telefone = *in.Telefone
	}
	if in.ComissaoPercentual != nil {
		if in.ComissaoPercentual.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		p.ComissaoPercentual = *in.ComissaoPercentual
	}
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProfissionalResponse(p), nil
}

// RenovarToken gera um novo token de agenda, invalidando URLs de feed antigas.
func (uc *ProfissionalUseCase) RenovarToken(id string) (*dto.ProfissionalResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	token, err := gerarTokenAgenda()
	if err != nil {
		return nil, err
	}
	p.TokenAgenda = token
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProfissionalResponse(p), nil
}

// Listar devolve os profissionais; somenteAtivos filtra os inativos.
func (uc *ProfissionalUseCase) Listar(somenteAtivos bool) ([]dto.ProfissionalResponse, error) {
	lista, err := uc.repo.List(somenteAtivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfissionalResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, *toProfissionalResponse(p))
	}
	return out, nil
}

func gerarTokenAgenda() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toProfissionalResponse(p *entity.Profissional) *dto.ProfissionalResponse {
	return &dto.ProfissionalResponse{
		ID:                 p.ID,
		Nome:               p.Nome,
		Email:              p.Email,
		Telefone:           p.Telefone,
		ComissaoPercentual: p.ComissaoPercentual,
		TokenAgenda:        p.TokenAgenda,
		Ativo:              p.Ativo,
	}
}
