package agenda

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// AgendamentoUseCase CRUD de agendamentos. A conclusão (com baixa de estoque)
// fica em ConcluirAgendamentoUseCase.
type AgendamentoUseCase struct {
	repo             repository.AgendamentoRepository
	servicoRepo      repository.ServicoRepository
	profissionalRepo repository.ProfissionalRepository
}

// NewAgendamentoUseCase constrói o caso de uso.
func NewAgendamentoUseCase(
	repo repository.AgendamentoRepository,
	servicoRepo repository.ServicoRepository,
	profissionalRepo repository.ProfissionalRepository,
) *AgendamentoUseCase {
	return &AgendamentoUseCase{repo: repo, servicoRepo: servicoRepo, profissionalRepo: profissionalRepo}
}

// Criar valida serviço e profissional e cria o agendamento. Valor zero assume
// o preço do serviço.
func (uc *AgendamentoUseCase) Criar(in dto.CriarAgendamentoRequest) (*dto.AgendamentoResponse, error) {
	if strings.TrimSpace(in.ClienteNome) == "" || in.ServicoID == "" || in.ProfissionalID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Inicio.IsZero() || !in.Fim.After(in.Inicio) {
		return nil, domain.ErrEntradaInvalida
	}
	servico, err := uc.servicoRepo.GetByID(in.ServicoID)
	if err != nil {
		return nil, err
	}
	if servico == nil {
		return nil, domain.ErrNaoEncontrado
	}
	profissional, err := uc.profissionalRepo.GetByID(in.ProfissionalID)
	if err != nil {
		return nil, err
	}
	if profissional == nil {
		return nil, domain.ErrNaoEncontrado
	}

	valor := in.Valor
	if valor.IsZero() {
		valor = servico.Preco
	}
	now := time.Now()
	a := &entity.Agendamento{
		ID:              uuid.New().String(),
		ClienteNome:     in.ClienteNome,
		ClienteEmail:    in.ClienteEmail,
		ClienteTelefone: in.ClienteTelefone,
		ServicoID:       in.ServicoID,
		ProfissionalID:  in.ProfissionalID,
		Inicio:          in.Inicio,
		Fim:             in.Fim,
		Status:          entity.AgendamentoAgendado,
		Valor:           valor,
		Observacoes:     in.Observacoes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAgendamentoResponse(a), nil
}

// Atualizar aplica apenas os campos presentes. A transição para CONCLUIDO não
// passa por aqui: usa o caso de uso de conclusão, que faz a baixa de estoque.
func (uc *AgendamentoUseCase) Atualizar(id string, in dto.AtualizarAgendamentoRequest) (*dto.AgendamentoResponse, error) {
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.AgendamentoAgendado, entity.AgendamentoConfirmado, entity.AgendamentoCancelado:
			a.Status = *in.Status
		case entity.AgendamentoConcluido:
			return nil, domain.ErrConflito
		default:
			return nil, domain.ErrEntradaInvalida
		}
	}
	if in.Inicio != nil {
		a.Inicio = *in.Inicio
	}
	if in.Fim != nil {
		a.Fim = *in.Fim
	}
	if !a.Fim.After(a.Inicio) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Pago != nil {
		a.Pago = *in.Pago
	}
	if in.Observacoes != nil {
		a.Observacoes = *in.Observacoes
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAgendamentoResponse(a), nil
}

// Excluir remove um agendamento. Agendamentos concluídos já geraram
// movimentações de estoque e ficam preservados.
func (uc *AgendamentoUseCase) Excluir(id string) error {
	if id == "" {
		return domain.ErrEntradaInvalida
	}
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNaoEncontrado
	}
	if a.Status == entity.AgendamentoConcluido {
		return domain.ErrConflito
	}
	return uc.repo.Delete(id)
}

// Listar devolve os agendamentos do período, opcionalmente de um profissional.
func (uc *AgendamentoUseCase) Listar(inicio, fim time.Time, profissionalID string) ([]dto.AgendamentoResponse, error) {
	lista, err := uc.repo.List(inicio, fim, profissionalID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgendamentoResponse, 0, len(lista))
	for _, a := range lista {
		out = append(out, *toAgendamentoResponse(a))
	}
	return out, nil
}

func toAgendamentoResponse(a *entity.Agendamento) *dto.AgendamentoResponse {
	return &dto.AgendamentoResponse{
		ID:              a.ID,
		ClienteNome:     a.ClienteNome,
		ClienteEmail:    a.ClienteEmail,
		ClienteTelefone: a.ClienteTelefone,
		ServicoID:       a.ServicoID,
		ProfissionalID:  a.ProfissionalID,
		Inicio:          a.Inicio,
		Fim:             a.Fim,
		Status:          a.Status,
		Valor:           a.Valor,
		Pago:            a.Pago,
		Observacoes:     a.Observacoes,
	}
}
