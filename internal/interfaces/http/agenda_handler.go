package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
)

// AgendaHandler trata agendamentos e o feed iCalendar.
type AgendaHandler struct {
	agendamentoUC *agenda.AgendamentoUseCase
	concluirUC    *agenda.ConcluirAgendamentoUseCase
	feedUC        *agenda.FeedUseCase
}

// NewAgendaHandler constrói o handler da agenda.
func NewAgendaHandler(
	agendamentoUC *agenda.AgendamentoUseCase,
	concluirUC *agenda.ConcluirAgendamentoUseCase,
	feedUC *agenda.FeedUseCase,
) *AgendaHandler {
	return &AgendaHandler{agendamentoUC: agendamentoUC, concluirUC: concluirUC, feedUC: feedUC}
}

// Criar godoc
// @Summary      Criar agendamento
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarAgendamentoRequest  true  "clientName, serviceId, professionalId, start, end"
// @Success      201   {object}  dto.AgendamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AgendaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarAgendamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.agendamentoUC.Criar(in)
	if err != nil {
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do agendamento inválidos"})
		}
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serviço ou profissional não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar agendamentos do período
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        inicio          query  string  false  "ISO YYYY-MM-DD; padrão: hoje"
// @Param        fim             query  string  false  "ISO YYYY-MM-DD; padrão: inicio + 7 dias"
// @Param        professionalId  query  string  false  "filtrar por profissional"
// @Success      200  {array}   dto.AgendamentoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/appointments [get]
func (h *AgendaHandler) Listar(c *fiber.Ctx) error {
	inicio, fim, err := periodoAgenda(c.Query("inicio"), c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas inválidas (use YYYY-MM-DD)"})
	}
	list, err := h.agendamentoUC.Listar(inicio, fim, c.Query("professionalId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Atualizar godoc
// @Summary      Atualizar agendamento (parcial)
// @Description  Mudança de status para CONCLUIDO não é aceita aqui; use a rota
//
//	de conclusão, que aplica as baixas de estoque.
//
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID do agendamento"
// @Param        body  body  dto.AtualizarAgendamentoRequest true  "campos presentes são aplicados"
// @Success      200   {object}  dto.AgendamentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AgendaHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarAgendamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.agendamentoUC.Atualizar(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agendamento não encontrado"})
		}
		if err == domain.ErrConflito {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "use POST /appointments/:id/concluir para concluir"})
		}
		if err == domain.ErrEntradaInvalida {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir agendamento
// @Description  Agendamentos concluídos não podem ser excluídos.
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do agendamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AgendaHandler) Excluir(c *fiber.Ctx) error {
	if err := h.agendamentoUC.Excluir(c.Params("id")); err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agendamento não encontrado"})
		}
		if err == domain.ErrConflito {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "agendamento concluído não pode ser excluído"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Concluir godoc
// @Summary      Concluir atendimento
// @Description  Marca o agendamento como CONCLUIDO e aplica as baixas
//
//	automáticas de estoque dos produtos vinculados ao serviço, tudo
//	na mesma transação. Vínculo obrigatório sem estoque aborta.
//
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do agendamento"
// @Success      200  {object}  dto.ConcluirAgendamentoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id}/concluir [post]
func (h *AgendaHandler) Concluir(c *fiber.Ctx) error {
	out, err := h.concluirUC.Concluir(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrNaoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agendamento não encontrado"})
		}
		if err == domain.ErrConflito {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "agendamento já encerrado"})
		}
		if err == domain.ErrEstoqueInsuficiente {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para produto obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed iCalendar da agenda do profissional
// @Description  Público, autenticado pelo token individual do profissional
//
//	(query param). Devolve text/calendar com um VEVENT por
//	agendamento não encerrado.
//
// @Tags         appointments
// @Produce      plain
// @Param        professionalId  path   string  true  "ID do profissional"
// @Param        token           query  string  true  "token da agenda"
// @Success      200  {string}  string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/agenda/{professionalId}/feed.ics [get]
func (h *AgendaHandler) Feed(c *fiber.Ctx) error {
	ics, err := h.feedUC.GerarFeed(c.Params("professionalId"), c.Query("token"))
	if err != nil {
		if err == domain.ErrNaoAutorizado {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="agenda.ics"`)
	return c.SendString(ics)
}

// periodoAgenda interpreta as datas da listagem: sem inicio usa hoje, sem fim
// usa inicio + 7 dias. O fim é exclusivo (dia seguinte à última data).
func periodoAgenda(inicioStr, fimStr string) (time.Time, time.Time, error) {
	hoje := time.Now().Truncate(24 * time.Hour)
	inicio := hoje
	if inicioStr != "" {
		t, err := time.Parse("2006-01-02", inicioStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		inicio = t
	}
	fim := inicio.AddDate(0, 0, 7)
	if fimStr != "" {
		t, err := time.Parse("2006-01-02", fimStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		fim = t.AddDate(0, 0, 1)
	}
	return inicio, fim, nil
}
