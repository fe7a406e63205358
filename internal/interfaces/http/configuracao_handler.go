package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/usecase"
	"github.com/salaobella/salao-api/internal/domain"
)

// ConfiguracaoHandler trata o armazenamento chave/valor de configurações.
type ConfiguracaoHandler struct {
	uc *usecase.ConfiguracaoUseCase
}

// NewConfiguracaoHandler constrói o handler de configurações.
func NewConfiguracaoHandler(uc *usecase.ConfiguracaoUseCase) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{uc: uc}
}

// Obter godoc
// @Summary      Obter configuração por chave
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        chave  path  string  true  "chave da configuração"
// @Success      200  {object}  dto.ConfiguracaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{chave} [get]
func (h *ConfiguracaoHandler) Obter(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Params("chave"))
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuração não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Definir godoc
// @Summary      Definir configuração
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        chave  path  string                           true  "chave da configuração"
// @Param        body   body  dto.AtualizarConfiguracaoRequest true  "valor"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{chave} [put]
func (h *ConfiguracaoHandler) Definir(c *fiber.Ctx) error {
	var in dto.AtualizarConfiguracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Definir(c.Params("chave"), in.Valor); err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "chave inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}
