package orcamento

import (
	"context"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// OrcamentoTxRunner executa uma função dentro de uma transação de BD com o
// repositório de orçamentos atado à tx. Cabeçalho e itens são gravados como
// unidade atômica: falha em qualquer item desfaz o cabeçalho.
type OrcamentoTxRunner interface {
	RunOrcamento(ctx context.Context, fn func(repo repository.OrcamentoRepository) error) error
}

// Mailer porta de envio de e-mail (implementada por infrastructure/mail).
type Mailer interface {
	Enviar(ctx context.Context, para, assunto, corpoHTML string, anexoNome string, anexo []byte) error
}

// PDFGenerator porta de geração do PDF do orçamento.
type PDFGenerator interface {
	GerarOrcamentoPDF(ctx context.Context, o *entity.Orcamento) ([]byte, error)
}
