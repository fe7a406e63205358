package repository

import (
	"time"

	"github.com/salaobella/salao-api/internal/domain/entity"
)

// AgendamentoRepository porta de persistência de agendamentos.
type AgendamentoRepository interface {
	Create(a *entity.Agendamento) error
	GetByID(id string) (*entity.Agendamento, error)
	Update(a *entity.Agendamento) error
	Delete(id string) error
	List(inicio, fim time.Time, profissionalID string) ([]*entity.Agendamento, error)
	// ListAgendaProfissional devolve os agendamentos não encerrados
	// (nem cancelados nem concluídos) de um profissional, para o feed ICS.
	ListAgendaProfissional(profissionalID string) ([]*entity.Agendamento, error)
}
