package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/internal/domain"
)

// OrcamentoHandler trata as rotas de orçamentos (protegido).
type OrcamentoHandler struct {
	criarUC  *orcamento.CriarOrcamentoUseCase
	listarUC *orcamento.ListarOrcamentosUseCase
	enviarUC *orcamento.EnviarOrcamentoUseCase
	pdfUC    *orcamento.PDFUseCase
}

// NewOrcamentoHandler constrói o handler de orçamentos.
func NewOrcamentoHandler(
	criarUC *orcamento.CriarOrcamentoUseCase,
	listarUC *orcamento.ListarOrcamentosUseCase,
	enviarUC *orcamento.EnviarOrcamentoUseCase,
	pdfUC *orcamento.PDFUseCase,
) *OrcamentoHandler {
	return &OrcamentoHandler{criarUC: criarUC, listarUC: listarUC, enviarUC: enviarUC, pdfUC: pdfUC}
}

// Criar godoc
// @Summary      Criar orçamento
// @Description  Grava cabeçalho e itens na mesma transação. Subtotal é a soma
//
//	dos totais de linha; total = subtotal - desconto.
//
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarOrcamentoRequest  true  "clientName, items, discount, validityDate"
// @Success      201   {object}  dto.OrcamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *OrcamentoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.criarUC.Criar(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do orçamento inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar orçamentos
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "RASCUNHO | ENVIADO | APROVADO | REJEITADO | EXPIRADO"
// @Param        limit   query  int     false  "máx. 100, padrão 20"
// @Param        offset  query  int     false  "padrão 0"
// @Success      200  {object}  dto.OrcamentoPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotes [get]
func (h *OrcamentoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.listarUC.Listar(c.Query("status"), page)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconhecido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarPainel godoc
// @Summary      Lista do painel de orçamentos
// @Description  Ordenada por validade decrescente; RASCUNHO e ENVIADO aparecem
//
//	como PENDENTE.
//
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {object}  dto.OrcamentoPageResponse
// @Router       /api/quotes/painel [get]
func (h *OrcamentoHandler) ListarPainel(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.listarUC.ListarPainel(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Enviar godoc
// @Summary      Enviar orçamento por e-mail
// @Description  Gera o PDF, envia ao cliente e promove RASCUNHO a ENVIADO.
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/send [post]
func (h *OrcamentoHandler) Enviar(c *fiber.Ctx) error {
	err := h.enviarUC.Enviar(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		if err == domain.ErrConflito {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "orçamento não está em estado enviável"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GerarPDF godoc
// @Summary      Baixar o PDF do orçamento
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *OrcamentoHandler) GerarPDF(c *fiber.Ctx) error {
	pdfBytes, nome, err := h.pdfUC.Gerar(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdfBytes)
}
