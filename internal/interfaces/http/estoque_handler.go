package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/domain"
)

// EstoqueHandler trata as rotas de produtos e movimentações de estoque (protegido).
type EstoqueHandler struct {
	produtoUC *estoque.ProdutoUseCase
	movUC     *estoque.RegistrarMovimentacaoUseCase
}

// NewEstoqueHandler constrói o handler de estoque.
func NewEstoqueHandler(produtoUC *estoque.ProdutoUseCase, movUC *estoque.RegistrarMovimentacaoUseCase) *EstoqueHandler {
	return &EstoqueHandler{produtoUC: produtoUC, movUC: movUC}
}

// CadastrarProduto godoc
// @Summary      Cadastrar produto
// @Description  Cria o produto e, se a quantidade inicial for positiva, registra
//
//	a movimentação de entrada "Cadastro" (e o lote quando há validade)
//	na mesma transação.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastrarProdutoRequest  true  "nome, quantidade_atual, preco_custo, preco_venda, validade (opcional)"
// @Success      200   {object}  dto.CadastrarProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/products [post]
func (h *EstoqueHandler) CadastrarProduto(c *fiber.Ctx) error {
	var in dto.CadastrarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.produtoUC.Cadastrar(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do produto inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarProdutos godoc
// @Summary      Listar produtos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {array}   dto.ProdutoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/products [get]
func (h *EstoqueHandler) ListarProdutos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.produtoUC.Listar(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// RegistrarMovimentacao godoc
// @Summary      Registrar movimentação de estoque
// @Description  entrada soma, saida subtrai, ajuste aplica a quantidade com o
//
//	próprio sinal. Saída maior que o estoque atual é rejeitada sem
//	alterar nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "productId, type, quantity, origin"
// @Success      201   {object}  dto.RegistrarMovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *EstoqueHandler) RegistrarMovimentacao(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.movUC.Registrar(c.Context(), estoque.MovimentacaoInput{
		ProdutoID:  in.ProdutoID,
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
		Origem:     in.Origem,
		CriadoPor:  GetUserID(c),
	})
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimentação inválida"})
		}
		if err == domain.ErrEstoqueInsuficiente {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
		}
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarMovimentacoes godoc
// @Summary      Histórico de movimentações de um produto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        limit   query  int     false  "máx. 100, padrão 20"
// @Param        offset  query  int     false  "padrão 0"
// @Success      200  {array}   entity.MovimentacaoEstoque
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *EstoqueHandler) ListarMovimentacoes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.produtoUC.Movimentacoes(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// EsgotarProduto godoc
// @Summary      Esgotar produto
// @Description  Zera o estoque registrando uma saída pela quantidade restante.
//
//	Produto já zerado devolve sucesso sem registrar nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EsgotarProdutoRequest  true  "id do produto"
// @Success      200   {object}  dto.EsgotarProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/deplete [post]
func (h *EstoqueHandler) EsgotarProduto(c *fiber.Ctx) error {
	var in dto.EsgotarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.produtoUC.Esgotar(c.Context(), GetUserID(c), in.ID)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
