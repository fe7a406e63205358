package repository

import "github.com/salaobella/salao-api/internal/domain/entity"

// VinculoRepository porta dos vínculos serviço×produto.
// Create devolve domain.ErrDuplicado quando o par (serviço, produto) já existe
// (violação de unicidade na base).
type VinculoRepository interface {
	Create(v *entity.VinculoServicoProduto) error
	GetByID(id string) (*entity.VinculoServicoProduto, error)
	Update(v *entity.VinculoServicoProduto) error
	// Delete é idempotente: remover um id inexistente não é erro.
	Delete(id string) error
	// List devolve os vínculos por data de criação, mais recentes primeiro.
	List() ([]*entity.VinculoServicoProduto, error)
	ListByServico(servicoID string) ([]*entity.VinculoServicoProduto, error)
}
