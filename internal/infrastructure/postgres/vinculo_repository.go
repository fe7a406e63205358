package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.VinculoRepository = (*VinculoRepo)(nil)

// VinculoRepo implementação de VinculoRepository sobre PostgreSQL.
// A unicidade do par (servico_id, produto_id) é garantida por constraint única.
type VinculoRepo struct {
	q Querier
}

// NewVinculoRepository constrói o adaptador de vínculos. Passar pool ou tx (Querier).
func NewVinculoRepository(q Querier) *VinculoRepo {
	return &VinculoRepo{q: q}
}

const vinculoCols = `id, servico_id, produto_id, quantidade_uso, obrigatorio, baixa_automatica, observacoes, created_at`

// Create persiste um vínculo. Devolve domain.ErrDuplicado se o par já existir.
func (r *VinculoRepo) Create(v *entity.VinculoServicoProduto) error {
	query := `
		INSERT INTO vinculos_servico_produto (` + vinculoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ServicoID, v.ProdutoID, v.QuantidadeUso, v.Obrigatorio, v.BaixaAutomatica, v.Observacoes, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert vinculo: %w", err)
	}
	return nil
}

// GetByID obtém um vínculo por ID. Devolve (nil, nil) se não existir.
func (r *VinculoRepo) GetByID(id string) (*entity.VinculoServicoProduto, error) {
	query := `SELECT ` + vinculoCols + ` FROM vinculos_servico_produto WHERE id = $1`
	var v entity.VinculoServicoProduto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ServicoID, &v.ProdutoID, &v.QuantidadeUso, &v.Obrigatorio, &v.BaixaAutomatica, &v.Observacoes, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vinculo: %w", err)
	}
	return &v, nil
}

// Update atualiza quantidade, flags e observações (o par serviço/produto é imutável).
func (r *VinculoRepo) Update(v *entity.VinculoServicoProduto) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE vinculos_servico_produto
		SET quantidade_uso = $2, obrigatorio = $3, baixa_automatica = $4, observacoes = $5
		WHERE id = $1`,
		v.ID, v.QuantidadeUso, v.Obrigatorio, v.BaixaAutomatica, v.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update vinculo: %w", err)
	}
	return nil
}

// Delete remove um vínculo. Idempotente: id inexistente não é erro.
func (r *VinculoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vinculos_servico_produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vinculo: %w", err)
	}
	return nil
}

// List devolve todos os vínculos, mais recentes primeiro.
func (r *VinculoRepo) List() ([]*entity.VinculoServicoProduto, error) {
	query := `SELECT ` + vinculoCols + ` FROM vinculos_servico_produto ORDER BY created_at DESC`
	return r.list(query)
}

// ListByServico devolve os vínculos de um serviço.
func (r *VinculoRepo) ListByServico(servicoID string) ([]*entity.VinculoServicoProduto, error) {
	query := `SELECT ` + vinculoCols + ` FROM vinculos_servico_produto WHERE servico_id = $1 ORDER BY created_at DESC`
	return r.list(query, servicoID)
}

func (r *VinculoRepo) list(query string, args ...any) ([]*entity.VinculoServicoProduto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vinculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.VinculoServicoProduto
	for rows.Next() {
		var v entity.VinculoServicoProduto
		if err := rows.Scan(&v.ID, &v.ServicoID, &v.ProdutoID, &v.QuantidadeUso, &v.Obrigatorio, &v.BaixaAutomatica, &v.Observacoes, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
