package orcamento

import (
	"context"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// PDFUseCase gera o PDF de um orçamento persistido.
type PDFUseCase struct {
	repo repository.OrcamentoRepository
	pdf  PDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(repo repository.OrcamentoRepository, pdf PDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, pdf: pdf}
}

// Gerar devolve os bytes do PDF e o nome sugerido do arquivo.
func (uc *PDFUseCase) Gerar(ctx context.Context, id string) ([]byte, string, error) {
	if id == "" {
		return nil, "", domain.ErrEntradaInvalida
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNaoEncontrado
	}
	pdf, err := uc.pdf.GerarOrcamentoPDF(ctx, o)
	if err != nil {
		return nil, "", err
	}
	return pdf, o.Numero + ".pdf", nil
}
