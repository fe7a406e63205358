package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/domain"
)

// VinculoHandler trata as rotas de vínculos serviço×produto (protegido).
type VinculoHandler struct {
	uc *estoque.VinculoUseCase
}

// NewVinculoHandler constrói o handler de vínculos.
func NewVinculoHandler(uc *estoque.VinculoUseCase) *VinculoHandler {
	return &VinculoHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar vínculo serviço×produto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarVinculoRequest  true  "serviceId, productId, quantity, required, autoDeduct"
// @Success      201   {object}  dto.VinculoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/service-product-links [post]
func (h *VinculoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarVinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serviceId e productId são obrigatórios"})
		}
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe vínculo para este serviço e produto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar vínculo (parcial)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID do vínculo"
// @Param        body  body  dto.AtualizarVinculoRequest true  "campos presentes são aplicados"
// @Success      200   {object}  dto.VinculoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/service-product-links/{id} [put]
func (h *VinculoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarVinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vínculo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir vínculo
// @Description  Idempotente: excluir um id inexistente devolve sucesso.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do vínculo"
// @Success      200  {object}  map[string]bool
// @Router       /api/inventory/service-product-links/{id} [delete]
func (h *VinculoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Listar godoc
// @Summary      Listar vínculos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VinculoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/service-product-links [get]
func (h *VinculoHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
