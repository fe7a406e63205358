package agenda_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
)

func feedFixture() (*agenda.FeedUseCase, *memAgendamentoRepo) {
	profissionais := newMemProfissionalRepo()
	profissionais.profissionais["prof-1"] = &entity.Profissional{
		ID: "prof-1", Nome: "Ana Lima", TokenAgenda: "token-secreto", Ativo: true,
	}
	servicos := newMemServicoRepo()
	servicos.servicos["s1"] = &entity.Servico{ID: "s1", Nome: "Corte feminino", Ativo: true}

	agendamentos := newMemAgendamentoRepo()
	inicio := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	seed := func(id, status string, offset time.Duration) {
		agendamentos.agendamentos[id] = &entity.Agendamento{
			ID: id, ClienteNome: "Maria", ServicoID: "s1", ProfissionalID: "prof-1",
			Inicio: inicio.Add(offset), Fim: inicio.Add(offset + time.Hour), Status: status,
		}
	}
	seed("a1", entity.AgendamentoAgendado, 0)
	seed("a2", entity.AgendamentoConfirmado, 2*time.Hour)
	seed("a3", entity.AgendamentoConcluido, 4*time.Hour)
	seed("a4", entity.AgendamentoCancelado, 6*time.Hour)

	return agenda.NewFeedUseCase(profissionais, agendamentos, servicos), agendamentos
}

func TestGerarFeed_TokenValidoIncluiSomenteAgendamentosAbertos(t *testing.T) {
	uc, _ := feedFixture()

	ics, err := uc.GerarFeed("prof-1", "token-secreto")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"), "concluídos e cancelados ficam de fora")
	assert.Contains(t, ics, "UID:a1@")
	assert.Contains(t, ics, "UID:a2@")
	assert.NotContains(t, ics, "UID:a3@")
	assert.NotContains(t, ics, "UID:a4@")
	assert.Contains(t, ics, "SUMMARY:Corte feminino - Maria")
}

func TestGerarFeed_TokenDivergenteNaoVazaCalendario(t *testing.T) {
	uc, _ := feedFixture()

	ics, err := uc.GerarFeed("prof-1", "token-errado")

	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
	assert.Empty(t, ics)
}

func TestGerarFeed_TokenVazioOuProfissionalInexistente(t *testing.T) {
	uc, _ := feedFixture()

	_, err := uc.GerarFeed("prof-1", "")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.GerarFeed("", "token-secreto")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.GerarFeed("prof-999", "token-secreto")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado, "profissional inexistente é indistinguível de token errado")
}

func TestGerarFeed_ProfissionalSemTokenNuncaAutoriza(t *testing.T) {
	profissionais := newMemProfissionalRepo()
	profissionais.profissionais["prof-1"] = &entity.Profissional{ID: "prof-1", Nome: "Ana", Ativo: true}
	uc := agenda.NewFeedUseCase(profissionais, newMemAgendamentoRepo(), newMemServicoRepo())

	_, err := uc.GerarFeed("prof-1", "")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado, "token vazio não casa com token vazio armazenado")
}
