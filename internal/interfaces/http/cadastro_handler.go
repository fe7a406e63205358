package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/usecase"
	"github.com/salaobella/salao-api/internal/domain"
)

// CadastroHandler trata os cadastros de serviços, profissionais e fornecedores.
type CadastroHandler struct {
	servicoUC      *usecase.ServicoUseCase
	profissionalUC *usecase.ProfissionalUseCase
	fornecedorUC   *usecase.FornecedorUseCase
}

// NewCadastroHandler constrói o handler de cadastros.
func NewCadastroHandler(
	servicoUC *usecase.ServicoUseCase,
	profissionalUC *usecase.ProfissionalUseCase,
	fornecedorUC *usecase.FornecedorUseCase,
) *CadastroHandler {
	return &CadastroHandler{servicoUC: servicoUC, profissionalUC: profissionalUC, fornecedorUC: fornecedorUC}
}

// ── Serviços ──────────────────────────────────────────────────────────────────

// CriarServico godoc
// @Summary      Criar serviço
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarServicoRequest  true  "nome, preco, duracao_minutos, comissao_percentual"
// @Success      201   {object}  dto.ServicoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *CadastroHandler) CriarServico(c *fiber.Ctx) error {
	var in dto.CriarServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.servicoUC.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do serviço inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AtualizarServico godoc
// @Summary      Atualizar serviço (parcial)
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID do serviço"
// @Param        body  body  dto.AtualizarServicoRequest true "campos presentes são aplicados"
// @Success      200   {object}  dto.ServicoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id} [put]
func (h *CadastroHandler) AtualizarServico(c *fiber.Ctx) error {
	var in dto.AtualizarServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.servicoUC.Atualizar(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serviço não encontrado"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarServicos godoc
// @Summary      Listar serviços
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Param        ativos  query  bool  false  "true lista apenas ativos"
// @Success      200  {array}  dto.ServicoResponse
// @Router       /api/services [get]
func (h *CadastroHandler) ListarServicos(c *fiber.Ctx) error {
	list, err := h.servicoUC.Listar(c.QueryBool("ativos"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ── Profissionais ─────────────────────────────────────────────────────────────

// CriarProfissional godoc
// @Summary      Criar profissional
// @Description  Gera também o token individual do feed iCalendar.
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProfissionalRequest  true  "nome, email, comissao_percentual"
// @Success      201   {object}  dto.ProfissionalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/professionals [post]
func (h *CadastroHandler) CriarProfissional(c *fiber.Ctx) error {
	var in dto.CriarProfissionalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.profissionalUC.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do profissional inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AtualizarProfissional godoc
// @Summary      Atualizar profissional (parcial)
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID do profissional"
// @Param        body  body  dto.AtualizarProfissionalRequest true  "campos presentes são aplicados"
// @Success      200   {object}  dto.ProfissionalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/professionals/{id} [put]
func (h *CadastroHandler) AtualizarProfissional(c *fiber.Ctx) error {
	var in dto.AtualizarProfissionalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.profissionalUC.Atualizar(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profissional não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RenovarTokenProfissional godoc
// @Summary      Renovar token do feed de agenda
// @Description  Invalida a URL de agenda anterior do profissional.
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do profissional"
// @Success      200  {object}  dto.ProfissionalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/professionals/{id}/renovar-token [post]
func (h *CadastroHandler) RenovarTokenProfissional(c *fiber.Ctx) error {
	out, err := h.profissionalUC.RenovarToken(c.Params("id"))
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profissional não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarProfissionais godoc
// @Summary      Listar profissionais
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Param        ativos  query  bool  false  "true lista apenas ativos"
// @Success      200  {array}  dto.ProfissionalResponse
// @Router       /api/professionals [get]
func (h *CadastroHandler) ListarProfissionais(c *fiber.Ctx) error {
	list, err := h.profissionalUC.Listar(c.QueryBool("ativos"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

// CriarFornecedor godoc
// @Summary      Criar fornecedor
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarFornecedorRequest  true  "nome, contato, email, telefone"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *CadastroHandler) CriarFornecedor(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.fornecedorUC.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AtualizarFornecedor godoc
// @Summary      Atualizar fornecedor
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID do fornecedor"
// @Param        body  body  dto.AtualizarFornecedorRequest true  "campos presentes são aplicados"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *CadastroHandler) AtualizarFornecedor(c *fiber.Ctx) error {
	var in dto.AtualizarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.fornecedorUC.Atualizar(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarFornecedores godoc
// @Summary      Listar fornecedores
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FornecedorResponse
// @Router       /api/suppliers [get]
func (h *CadastroHandler) ListarFornecedores(c *fiber.Ctx) error {
	list, err := h.fornecedorUC.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
