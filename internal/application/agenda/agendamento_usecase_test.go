package agenda_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
)

func agendamentoFixture() (*agenda.AgendamentoUseCase, *memAgendamentoRepo) {
	servicos := newMemServicoRepo()
	servicos.servicos["s1"] = &entity.Servico{ID: "s1", Nome: "Corte", Preco: decimal.NewFromInt(50), Ativo: true}
	profissionais := newMemProfissionalRepo()
	profissionais.profissionais["prof-1"] = &entity.Profissional{ID: "prof-1", Nome: "Ana", Ativo: true}
	repo := newMemAgendamentoRepo()
	return agenda.NewAgendamentoUseCase(repo, servicos, profissionais), repo
}

func requisicaoValida() dto.CriarAgendamentoRequest {
	inicio := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return dto.CriarAgendamentoRequest{
		ClienteNome:    "Maria Souza",
		ServicoID:      "s1",
		ProfissionalID: "prof-1",
		Inicio:         inicio,
		Fim:            inicio.Add(time.Hour),
	}
}

func TestCriarAgendamento_ValorZeroAssumePrecoDoServico(t *testing.T) {
	uc, _ := agendamentoFixture()

	resp, err := uc.Criar(requisicaoValida())

	require.NoError(t, err)
	assert.Equal(t, entity.AgendamentoAgendado, resp.Status)
	assert.True(t, resp.Valor.Equal(decimal.NewFromInt(50)), "valor default é o preço do serviço, veio %s", resp.Valor)
	assert.False(t, resp.Pago)
}

func TestCriarAgendamento_ValorInformadoPrevalece(t *testing.T) {
	uc, _ := agendamentoFixture()

	req := requisicaoValida()
	req.Valor = decimal.NewFromInt(80)
	resp, err := uc.Criar(req)

	require.NoError(t, err)
	assert.True(t, resp.Valor.Equal(decimal.NewFromInt(80)))
}

func TestCriarAgendamento_Validacoes(t *testing.T) {
	uc, _ := agendamentoFixture()

	semCliente := requisicaoValida()
	semCliente.ClienteNome = "  "

	fimAntesDoInicio := requisicaoValida()
	fimAntesDoInicio.Fim = fimAntesDoInicio.Inicio.Add(-time.Hour)

	fimIgualAoInicio := requisicaoValida()
	fimIgualAoInicio.Fim = fimIgualAoInicio.Inicio

	for _, tc := range []struct {
		nome string
		req  dto.CriarAgendamentoRequest
	}{
		{"cliente sem nome", semCliente},
		{"fim antes do início", fimAntesDoInicio},
		{"fim igual ao início", fimIgualAoInicio},
	} {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := uc.Criar(tc.req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

func TestCriarAgendamento_ServicoOuProfissionalInexistente(t *testing.T) {
	uc, _ := agendamentoFixture()

	req := requisicaoValida()
	req.ServicoID = "s-999"
	_, err := uc.Criar(req)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	req = requisicaoValida()
	req.ProfissionalID = "prof-999"
	_, err = uc.Criar(req)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestAtualizarAgendamento_TransicaoParaConcluidoEhBloqueada(t *testing.T) {
	uc, _ := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)

	concluido := entity.AgendamentoConcluido
	_, err = uc.Atualizar(criado.ID, dto.AtualizarAgendamentoRequest{Status: &concluido})

	assert.ErrorIs(t, err, domain.ErrConflito, "concluir passa pelo caso de uso de conclusão")
}

func TestAtualizarAgendamento_StatusDesconhecido(t *testing.T) {
	uc, _ := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)

	invalido := "EM_ESPERA"
	_, err = uc.Atualizar(criado.ID, dto.AtualizarAgendamentoRequest{Status: &invalido})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAtualizarAgendamento_AplicaSomenteCamposPresentes(t *testing.T) {
	uc, repo := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)

	pago := true
	confirmado := entity.AgendamentoConfirmado
	resp, err := uc.Atualizar(criado.ID, dto.AtualizarAgendamentoRequest{Status: &confirmado, Pago: &pago})

	require.NoError(t, err)
	assert.Equal(t, entity.AgendamentoConfirmado, resp.Status)
	assert.True(t, resp.Pago)
	assert.Equal(t, criado.Inicio, resp.Inicio, "início não informado permanece")
	assert.Equal(t, "Maria Souza", repo.agendamentos[criado.ID].ClienteNome)
}

func TestAtualizarAgendamento_ReagendamentoInvertido(t *testing.T) {
	uc, _ := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)

	novoFim := criado.Inicio.Add(-time.Hour)
	_, err = uc.Atualizar(criado.ID, dto.AtualizarAgendamentoRequest{Fim: &novoFim})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestExcluirAgendamento_RemoveDoRepositorio(t *testing.T) {
	uc, repo := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)

	require.NoError(t, uc.Excluir(criado.ID))
	assert.NotContains(t, repo.agendamentos, criado.ID)
}

func TestExcluirAgendamento_ConcluidoEhPreservado(t *testing.T) {
	uc, repo := agendamentoFixture()
	criado, err := uc.Criar(requisicaoValida())
	require.NoError(t, err)
	repo.agendamentos[criado.ID].Status = entity.AgendamentoConcluido

	err = uc.Excluir(criado.ID)

	assert.ErrorIs(t, err, domain.ErrConflito, "concluído gerou baixas de estoque e não pode sumir")
	assert.Contains(t, repo.agendamentos, criado.ID)
}

func TestExcluirAgendamento_Inexistente(t *testing.T) {
	uc, _ := agendamentoFixture()
	assert.ErrorIs(t, uc.Excluir("nao-existe"), domain.ErrNaoEncontrado)
}

func TestListarAgendamentos_FiltraPorPeriodoEProfissional(t *testing.T) {
	uc, repo := agendamentoFixture()
	base := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	seed := func(id, prof string, offset time.Duration) {
		repo.agendamentos[id] = &entity.Agendamento{
			ID: id, ClienteNome: "Maria", ServicoID: "s1", ProfissionalID: prof,
			Inicio: base.Add(offset), Fim: base.Add(offset + time.Hour), Status: entity.AgendamentoAgendado,
		}
	}
	seed("a1", "prof-1", 0)
	seed("a2", "prof-2", time.Hour)
	seed("a3", "prof-1", 48*time.Hour) // fora do período

	lista, err := uc.Listar(base, base.Add(24*time.Hour), "")
	require.NoError(t, err)
	assert.Len(t, lista, 2)

	lista, err = uc.Listar(base, base.Add(24*time.Hour), "prof-1")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "a1", lista[0].ID)
}
