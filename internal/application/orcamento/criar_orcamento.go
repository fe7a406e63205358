package orcamento

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// CriarOrcamentoUseCase cria o orçamento com itens em uma única transação.
// Subtotal = soma dos valores de linha enviados pelo chamador (não recomputado
// de quantidade × unitário); Total = Subtotal - Desconto. Desconto negativo ou
// maior que o subtotal é rejeitado: totais negativos não são permitidos.
type CriarOrcamentoUseCase struct {
	txRunner OrcamentoTxRunner
	repo     repository.OrcamentoRepository
}

// NewCriarOrcamentoUseCase constrói o caso de uso.
func NewCriarOrcamentoUseCase(txRunner OrcamentoTxRunner, repo repository.OrcamentoRepository) *CriarOrcamentoUseCase {
	return &CriarOrcamentoUseCase{txRunner: txRunner, repo: repo}
}

// Criar valida e persiste o orçamento, devolvendo-o com itens (join com o nome
// do serviço quando aplicável).
func (uc *CriarOrcamentoUseCase) Criar(ctx context.Context, criadoPor string, in dto.CriarOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	if strings.TrimSpace(in.ClienteNome) == "" || len(in.Itens) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if _, err := mail.ParseAddress(in.ClienteEmail); err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	validade, err := time.Parse("2006-01-02", in.Validade)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Desconto.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}

	subtotal := decimal.Zero
	for _, item := range in.Itens {
		if item.Quantidade < 1 {
			return nil, domain.ErrEntradaInvalida
		}
		if item.ValorUnitario.IsNegative() || item.ValorTotal.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		subtotal = subtotal.Add(item.ValorTotal)
	}
	if in.Desconto.GreaterThan(subtotal) {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	o := &entity.Orcamento{
		ID:              uuid.New().String(),
		Numero:          fmt.Sprintf("ORC-%d", now.Unix()),
		ClienteNome:     in.ClienteNome,
		ClienteEmail:    in.ClienteEmail,
		ClienteTelefone: in.ClienteTelefone,
		ClienteEndereco: in.ClienteEndereco,
		EmpresaInfo:     in.EmpresaInfo,
		Subtotal:        subtotal,
		Desconto:        in.Desconto,
		Total:           subtotal.Sub(in.Desconto),
		Validade:        validade,
		Status:          entity.OrcamentoRascunho,
		Observacoes:     in.Observacoes,
		Condicoes:       in.Condicoes,
		CriadoPor:       criadoPor,
		CreatedAt:       now,
	}

	// Cabeçalho e itens na mesma transação: falha no insert de item desfaz o
	// cabeçalho (substitui a exclusão compensatória manual da referência).
	err = uc.txRunner.RunOrcamento(ctx, func(repo repository.OrcamentoRepository) error {
		if err := repo.Create(o); err != nil {
			return err
		}
		for i, item := range in.Itens {
			ordem := item.Ordem
			if ordem <= 0 {
				ordem = i + 1
			}
			var servicoID *string
			if item.ServicoID != "" {
				s := item.ServicoID
				servicoID = &s
			}
			it := &entity.OrcamentoItem{
				ID:            uuid.New().String(),
				OrcamentoID:   o.ID,
				ServicoID:     servicoID,
				Descricao:     item.Descricao,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
				ValorTotal:    item.ValorTotal,
				Ordem:         ordem,
			}
			if err := repo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Releitura com join para devolver os nomes de serviço.
	persistido, err := uc.repo.GetByID(o.ID)
	if err != nil {
		return nil, err
	}
	if persistido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return ToOrcamentoResponse(persistido), nil
}

// ToOrcamentoResponse converte a entidade para o DTO de resposta.
func ToOrcamentoResponse(o *entity.Orcamento) *dto.OrcamentoResponse {
	itens := make([]dto.OrcamentoItemResponse, 0, len(o.Itens))
	for _, it := range o.Itens {
		servicoID := ""
		if it.ServicoID != nil {
			servicoID = *it.ServicoID
		}
		itens = append(itens, dto.OrcamentoItemResponse{
			ID:            it.ID,
			ServicoID:     servicoID,
			ServicoNome:   it.ServicoNome,
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			ValorTotal:    it.ValorTotal,
			Ordem:         it.Ordem,
		})
	}
	return &dto.OrcamentoResponse{
		ID:              o.ID,
		Numero:          o.Numero,
		ClienteNome:     o.ClienteNome,
		ClienteEmail:    o.ClienteEmail,
		ClienteTelefone: o.ClienteTelefone,
		ClienteEndereco: o.ClienteEndereco,
		EmpresaInfo:     o.EmpresaInfo,
		Subtotal:        o.Subtotal,
		Desconto:        o.Desconto,
		Total:           o.Total,
		Validade:        o.Validade,
		Status:          o.Status,
		StatusExibicao:  o.StatusExibicao(),
		Observacoes:     o.Observacoes,
		Condicoes:       o.Condicoes,
		CriadoPor:       o.CriadoPor,
		CreatedAt:       o.CreatedAt,
		Itens:           itens,
	}
}
