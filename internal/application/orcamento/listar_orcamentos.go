package orcamento

import (
	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// Status de filtro aceitos na listagem.
var statusValidos = map[string]bool{
	entity.OrcamentoRascunho:  true,
	entity.OrcamentoEnviado:   true,
	entity.OrcamentoAprovado:  true,
	entity.OrcamentoRejeitado: true,
	entity.OrcamentoExpirado:  true,
}

// ListarOrcamentosUseCase listagens paginadas de orçamentos.
type ListarOrcamentosUseCase struct {
	repo repository.OrcamentoRepository
}

// NewListarOrcamentosUseCase constrói o caso de uso.
func NewListarOrcamentosUseCase(repo repository.OrcamentoRepository) *ListarOrcamentosUseCase {
	return &ListarOrcamentosUseCase{repo: repo}
}

// Listar pagina por data de criação (desc). Status vazio lista todos.
func (uc *ListarOrcamentosUseCase) Listar(status string, page dto.PageRequest) (*dto.OrcamentoPageResponse, error) {
	page.DefaultPage()
	if status != "" && !statusValidos[status] {
		return nil, domain.ErrEntradaInvalida
	}
	lista, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPage(lista, page), nil
}

// ListarPainel pagina por validade (desc) para a lista do painel. O status de
// exibição agrupa RASCUNHO e ENVIADO como PENDENTE.
func (uc *ListarOrcamentosUseCase) ListarPainel(page dto.PageRequest) (*dto.OrcamentoPageResponse, error) {
	page.DefaultPage()
	lista, err := uc.repo.ListPainel(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPage(lista, page), nil
}

func toPage(lista []*entity.Orcamento, page dto.PageRequest) *dto.OrcamentoPageResponse {
	itens := make([]dto.OrcamentoResponse, 0, len(lista))
	for _, o := range lista {
		itens = append(itens, *ToOrcamentoResponse(o))
	}
	return &dto.OrcamentoPageResponse{
		Total:  len(itens),
		Limit:  page.Limit,
		Offset: page.Offset,
		Itens:  itens,
	}
}
