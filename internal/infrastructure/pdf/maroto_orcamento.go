// Package pdf implementa a geração do documento PDF de orçamento
// entregue ao cliente.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Salão + info da empresa  │  N° Orçamento + Data    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + contato + endereço                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Valor Unit. | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Desconto / TOTAL                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Validade + condições + observações                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apporcamento "github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/pkg/moeda"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 14, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apporcamento.PDFGenerator = (*MarotoOrcamentoGenerator)(nil)

// MarotoOrcamentoGenerator implementa orcamento.PDFGenerator usando Maroto v2.
type MarotoOrcamentoGenerator struct{}

// NewMarotoOrcamentoGenerator constrói o gerador.
func NewMarotoOrcamentoGenerator() *MarotoOrcamentoGenerator { return &MarotoOrcamentoGenerator{} }

// GerarOrcamentoPDF gera o PDF do orçamento e devolve seus bytes.
func (g *MarotoOrcamentoGenerator) GerarOrcamentoPDF(_ context.Context, o *entity.Orcamento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+o.Numero, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(o.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(o))

	m.AddRows(line.NewRow(3))
	for _, r := range rodapeRows(o) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do salão (esq) e número + data do orçamento (dir).
func headerRow(o *entity.Orcamento) core.Row {
	data := o.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Salão Bella", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(o.EmpresaInfo, "Beleza e bem-estar"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORÇAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: dados do cliente (snapshot na criação).
func clienteRow(o *entity.Orcamento) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(o.ClienteNome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Endereço: %s",
				nonEmpty(o.ClienteEmail, "—"),
				nonEmpty(o.ClienteTelefone, "—"),
				nonEmpty(o.ClienteEndereco, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição", 6, align.Left),
		h("Valor Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: uma linha por item do orçamento.
func tableItemRows(itens []entity.OrcamentoItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		descricao := it.Descricao
		if descricao == "" {
			descricao = it.ServicoNome
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				moeda.FormatBRL(it.ValorUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				moeda.FormatBRL(it.ValorTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(o *entity.Orcamento) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Desconto:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(moeda.FormatBRL(o.Subtotal)),
			value(moeda.FormatBRL(o.Desconto)),
			grandValue(moeda.FormatBRL(o.Total)),
		),
		col.New(3),
	)
}

// rodapeRows: validade, condições e observações.
func rodapeRows(o *entity.Orcamento) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Válido até "+o.Validade.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if o.Condicoes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Condições:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(o.Condicoes, props.Text{Size: 8, Color: colorGray, Top: 6}),
		)))
	}
	if o.Observacoes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observações:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(o.Observacoes, props.Text{Size: 8, Color: colorGray, Top: 6}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este orçamento não constitui reserva de horário. "+
				"Agende seu atendimento com antecedência.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
