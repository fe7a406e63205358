package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/application/financeiro"
	"github.com/salaobella/salao-api/internal/domain"
)

// FinanceiroHandler trata relatórios financeiros e contas a pagar (protegido).
type FinanceiroHandler struct {
	comissaoUC   *financeiro.ComissaoUseCase
	contasUC     *financeiro.ContasPagarUseCase
	fluxoCaixaUC *financeiro.FluxoCaixaUseCase
}

// NewFinanceiroHandler constrói o handler financeiro.
func NewFinanceiroHandler(
	comissaoUC *financeiro.ComissaoUseCase,
	contasUC *financeiro.ContasPagarUseCase,
	fluxoCaixaUC *financeiro.FluxoCaixaUseCase,
) *FinanceiroHandler {
	return &FinanceiroHandler{comissaoUC: comissaoUC, contasUC: contasUC, fluxoCaixaUC: fluxoCaixaUC}
}

// Comissoes godoc
// @Summary      Comissões por profissional no período
// @Description  Considera apenas atendimentos concluídos e pagos. O percentual
//
//	do serviço prevalece sobre o padrão do profissional.
//
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "ISO YYYY-MM-DD"
// @Param        fim     query  string  true  "ISO YYYY-MM-DD (inclusivo)"
// @Success      200  {array}   dto.ComissaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financeiro/comissoes [get]
func (h *FinanceiroHandler) Comissoes(c *fiber.Ctx) error {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio inválido (use YYYY-MM-DD)"})
	}
	fim, err := time.Parse("2006-01-02", c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim inválido (use YYYY-MM-DD)"})
	}
	// fim inclusivo: consulta até o fim do dia
	out, err := h.comissaoUC.Totais(c.Context(), inicio, fim.AddDate(0, 0, 1))
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período invertido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CriarContaPagar godoc
// @Summary      Criar conta a pagar
// @Description  Conta recorrente com N parcelas gera N lançamentos mensais a
//
//	partir do vencimento, todos na mesma série.
//
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarContaPagarRequest  true  "descricao, valor, vencimento, recorrente, parcelas"
// @Success      201   {array}   dto.ContaPagarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas-pagar [post]
func (h *FinanceiroHandler) CriarContaPagar(c *fiber.Ctx) error {
	var in dto.CriarContaPagarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.contasUC.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados da conta inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AtualizarStatusConta godoc
// @Summary      Atualizar status de conta a pagar
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID da conta"
// @Param        body  body  dto.AtualizarStatusContaRequest true  "status (PENDENTE | PAGO), data_pagamento"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas-pagar/{id} [put]
func (h *FinanceiroHandler) AtualizarStatusConta(c *fiber.Ctx) error {
	var in dto.AtualizarStatusContaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.contasUC.AtualizarStatus(c.Params("id"), in); err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conta não encontrada"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status ou data inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListarContasPagar godoc
// @Summary      Listar contas a pagar
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDENTE | PAGO; vazio lista todos"
// @Param        inicio  query  string  false  "vencimento a partir de (ISO); padrão: início do mês"
// @Param        fim     query  string  false  "vencimento até (ISO, inclusivo); padrão: fim do mês"
// @Success      200  {array}   dto.ContaPagarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas-pagar [get]
func (h *FinanceiroHandler) ListarContasPagar(c *fiber.Ctx) error {
	agora := time.Now()
	inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)
	if s := c.Query("inicio"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio inválido (use YYYY-MM-DD)"})
		}
		inicio = t
	}
	if s := c.Query("fim"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim inválido (use YYYY-MM-DD)"})
		}
		fim = t.AddDate(0, 0, 1)
	}
	out, err := h.contasUC.Listar(c.Query("status"), inicio, fim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FluxoCaixa godoc
// @Summary      Fluxo de caixa mensal do ano
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        ano  query  int  false  "padrão: ano corrente"
// @Success      200  {array}   dto.FluxoCaixaMensalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financeiro/fluxo-caixa [get]
func (h *FinanceiroHandler) FluxoCaixa(c *fiber.Ctx) error {
	ano := time.Now().Year()
	if s := c.Query("ano"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano inválido"})
		}
		ano = n
	}
	out, err := h.fluxoCaixaUC.Mensal(c.Context(), ano)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano fora do intervalo aceito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
