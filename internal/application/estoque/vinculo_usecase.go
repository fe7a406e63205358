package estoque

import (
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// VinculoUseCase registro de vínculos serviço×produto.
// A unicidade do par (serviço, produto) é garantida por constraint na base;
// o repositório traduz a violação para domain.ErrDuplicado.
type VinculoUseCase struct {
	repo repository.VinculoRepository
}

// NewVinculoUseCase constrói o caso de uso.
func NewVinculoUseCase(repo repository.VinculoRepository) *VinculoUseCase {
	return &VinculoUseCase{repo: repo}
}

// Criar cria um vínculo. Quantidade não positiva assume 1.
func (uc *VinculoUseCase) Criar(in dto.CriarVinculoRequest) (*dto.VinculoResponse, error) {
	if in.ServicoID == "" || in.ProdutoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	qtd := in.Quantidade
	if qtd <= 0 {
		qtd = 1
	}
	v := &entity.VinculoServicoProduto{
		ID:              uuid.New().String(),
		ServicoID:       in.ServicoID,
		ProdutoID:       in.ProdutoID,
		QuantidadeUso:   qtd,
		Obrigatorio:     in.Obrigatorio,
		BaixaAutomatica: in.BaixaAutomatica,
		Observacoes:     in.Observacoes,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return toVinculoResponse(v), nil
}

// Atualizar aplica apenas os campos presentes. Quantidade informada e não
// positiva assume 1, mesma regra da criação.
func (uc *VinculoUseCase) Atualizar(id string, in dto.AtualizarVinculoRequest) (*dto.VinculoResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Quantidade != nil {
		qtd := *in.Quantidade
		if qtd <= 0 {
			qtd = 1
		}
		v.QuantidadeUso = qtd
	}
	if in.Obrigatorio != nil {
		v.Obrigatorio = *in.Obrigatorio
	}
	if in.BaixaAutomatica != nil {
		v.BaixaAutomatica = *in.BaixaAutomatica
	}
	if in.Observacoes != nil {
		v.Observacoes = *in.Observacoes
	}
	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	return toVinculoResponse(v), nil
}

// Excluir remove um vínculo. A exclusão é idempotente: id inexistente não é
// reportado como erro.
func (uc *VinculoUseCase) Excluir(id string) error {
	if id == "" {
		return domain.ErrEntradaInvalida
	}
	return uc.repo.Delete(id)
}

// Listar devolve os vínculos por data de criação, mais recentes primeiro.
func (uc *VinculoUseCase) Listar() ([]dto.VinculoResponse, error) {
	vinculos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VinculoResponse, 0, len(vinculos))
	for _, v := range vinculos {
		out = append(out, *toVinculoResponse(v))
	}
	return out, nil
}

func toVinculoResponse(v *entity.VinculoServicoProduto) *dto.VinculoResponse {
	return &dto.VinculoResponse{
		ID:              v.ID,
		ServicoID:       v.ServicoID,
		ProdutoID:       v.ProdutoID,
		Quantidade:      v.QuantidadeUso,
		Obrigatorio:     v.Obrigatorio,
		BaixaAutomatica: v.BaixaAutomatica,
		Observacoes:     v.Observacoes,
		CreatedAt:       v.CreatedAt,
	}
}
