package agenda

import (
	"crypto/subtle"
	"time"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// FeedUseCase gera o feed iCalendar por profissional, autenticado por token
// armazenado (query param, sem JWT — consumido por apps de calendário).
type FeedUseCase struct {
	profissionalRepo repository.ProfissionalRepository
	agendamentoRepo  repository.AgendamentoRepository
	servicoRepo      repository.ServicoRepository
}

// NewFeedUseCase constrói o caso de uso.
func NewFeedUseCase(
	profissionalRepo repository.ProfissionalRepository,
	agendamentoRepo repository.AgendamentoRepository,
	servicoRepo repository.ServicoRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profissionalRepo: profissionalRepo,
		agendamentoRepo:  agendamentoRepo,
		servicoRepo:      servicoRepo,
	}
}

// GerarFeed valida o token e devolve o texto do calendário. Token divergente
// (ou profissional inexistente) devolve ErrNaoAutorizado sem corpo de
// calendário. Apenas agendamentos não cancelados e não concluídos entram.
func (uc *FeedUseCase) GerarFeed(profissionalID, token string) (string, error) {
	if profissionalID == "" || token == "" {
		return "", domain.ErrNaoAutorizado
	}
	p, err := uc.profissionalRepo.GetByID(profissionalID)
	if err != nil {
		return "", err
	}
	if p == nil || p.TokenAgenda == "" {
		return "", domain.ErrNaoAutorizado
	}
	if subtle.ConstantTimeCompare([]byte(p.TokenAgenda), []byte(token)) != 1 {
		return "", domain.ErrNaoAutorizado
	}

	agendamentos, err := uc.agendamentoRepo.ListAgendaProfissional(p.ID)
	if err != nil {
		return "", err
	}

	// Cache local de nomes de serviço para o SUMMARY.
	nomes := make(map[string]string)
	eventos := make([]EventoICS, 0, len(agendamentos))
	for _, a := range agendamentos {
		nome, ok := nomes[a.ServicoID]
		if !ok {
			if s, err := uc.servicoRepo.GetByID(a.ServicoID); err == nil && s != nil {
				nome = s.Nome
			}
			nomes[a.ServicoID] = nome
		}
		eventos = append(eventos, EventoICS{Agendamento: a, ServicoNome: nome})
	}

	return MontarCalendario(p.Nome, eventos, time.Now()), nil
}
