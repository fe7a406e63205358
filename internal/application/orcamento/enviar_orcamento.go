package orcamento

import (
	"context"
	"fmt"
	"strings"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
	"github.com/salaobella/salao-api/pkg/moeda"
)

// EnviarOrcamentoUseCase envia o orçamento por e-mail ao cliente com o PDF em
// anexo e transiciona RASCUNHO -> ENVIADO.
type EnviarOrcamentoUseCase struct {
	repo   repository.OrcamentoRepository
	mailer Mailer
	pdf    PDFGenerator
}

// NewEnviarOrcamentoUseCase constrói o caso de uso.
func NewEnviarOrcamentoUseCase(repo repository.OrcamentoRepository, mailer Mailer, pdf PDFGenerator) *EnviarOrcamentoUseCase {
	return &EnviarOrcamentoUseCase{repo: repo, mailer: mailer, pdf: pdf}
}

// Enviar monta o corpo, gera o PDF e dispara o e-mail. Orçamentos aprovados,
// rejeitados ou expirados não podem ser reenviados.
func (uc *EnviarOrcamentoUseCase) Enviar(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrEntradaInvalida
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNaoEncontrado
	}
	if o.Status != entity.OrcamentoRascunho && o.Status != entity.OrcamentoEnviado {
		return domain.ErrConflito
	}
	if o.ClienteEmail == "" {
		return domain.ErrEntradaInvalida
	}

	anexo, err := uc.pdf.GerarOrcamentoPDF(ctx, o)
	if err != nil {
		return fmt.Errorf("gerar PDF do orçamento: %w", err)
	}

	assunto := fmt.Sprintf("Orçamento %s - Salão Bella", o.Numero)
	if err := uc.mailer.Enviar(ctx, o.ClienteEmail, assunto, corpoEmail(o), o.Numero+".pdf", anexo); err != nil {
		return fmt.Errorf("enviar orçamento %s: %w", o.Numero, err)
	}

	if o.Status == entity.OrcamentoRascunho {
		return uc.repo.UpdateStatus(o.ID, entity.OrcamentoEnviado)
	}
	return nil
}

// corpoEmail monta o corpo HTML do e-mail com os itens e totais em pt-BR.
func corpoEmail(o *entity.Orcamento) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Olá, %s!</p>", o.ClienteNome)
	fmt.Fprintf(&b, "<p>Segue o orçamento <strong>%s</strong>, válido até %s.</p>", o.Numero, o.Validade.Format("02/01/2006"))
	b.WriteString("<table border=\"0\" cellpadding=\"4\"><tr><th align=\"left\">Item</th><th>Qtd</th><th align=\"right\">Valor</th></tr>")
	for _, it := range o.Itens {
		desc := it.Descricao
		if desc == "" {
			desc = it.ServicoNome
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td align=\"center\">%d</td><td align=\"right\">%s</td></tr>",
			desc, it.Quantidade, moeda.FormatBRL(it.ValorTotal))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Subtotal: %s<br>", moeda.FormatBRL(o.Subtotal))
	if o.Desconto.IsPositive() {
		fmt.Fprintf(&b, "Desconto: %s<br>", moeda.FormatBRL(o.Desconto))
	}
	fmt.Fprintf(&b, "<strong>Total: %s</strong></p>", moeda.FormatBRL(o.Total))
	if o.Condicoes != "" {
		fmt.Fprintf(&b, "<p>%s</p>", o.Condicoes)
	}
	b.WriteString("<p>O PDF completo segue em anexo.</p>")
	return b.String()
}
