package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

// OrcamentoRepo implementação de OrcamentoRepository sobre PostgreSQL.
// Cabeçalho e itens são gravados na mesma transação pelo caso de uso
// (via OrcamentoTxRunner); aqui cada método é uma operação simples.
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador de orçamentos. Passar pool ou tx (Querier).
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

const orcamentoCols = `id, numero, cliente_nome, cliente_email, cliente_telefone, cliente_endereco, empresa_info, subtotal, desconto, total, validade, status, observacoes, condicoes, criado_por, created_at`

// Create persiste o cabeçalho do orçamento.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (` + orcamentoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	criadoPor := (*string)(nil)
	if o.CriadoPor != "" {
		criadoPor = &o.CriadoPor
	}
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Numero, o.ClienteNome, o.ClienteEmail, o.ClienteTelefone, o.ClienteEndereco,
		o.EmpresaInfo, o.Subtotal, o.Desconto, o.Total, o.Validade, o.Status,
		o.Observacoes, o.Condicoes, criadoPor, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orcamento: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do orçamento.
func (r *OrcamentoRepo) CreateItem(item *entity.OrcamentoItem) error {
	query := `
		INSERT INTO orcamento_itens (id, orcamento_id, servico_id, descricao, quantidade, valor_unitario, valor_total, ordem)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrcamentoID, item.ServicoID, item.Descricao,
		item.Quantidade, item.ValorUnitario, item.ValorTotal, item.Ordem,
	)
	if err != nil {
		return fmt.Errorf("insert orcamento item: %w", err)
	}
	return nil
}

// GetByID obtém o orçamento com itens (join com nome do serviço).
// Devolve (nil, nil) se não existir.
func (r *OrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos WHERE id = $1`
	var o entity.Orcamento
	var criadoPor *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Numero, &o.ClienteNome, &o.ClienteEmail, &o.ClienteTelefone, &o.ClienteEndereco,
		&o.EmpresaInfo, &o.Subtotal, &o.Desconto, &o.Total, &o.Validade, &o.Status,
		&o.Observacoes, &o.Condicoes, &criadoPor, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}
	if criadoPor != nil {
		o.CriadoPor = *criadoPor
	}

	if err := r.carregarItens([]*entity.Orcamento{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// carregarItens carrega as linhas de todos os orçamentos informados em uma
// única consulta (join com nome do serviço) e as distribui pelos cabeçalhos.
func (r *OrcamentoRepo) carregarItens(list []*entity.Orcamento) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, len(list))
	porID := make(map[string]*entity.Orcamento, len(list))
	for i, o := range list {
		ids[i] = o.ID
		porID[o.ID] = o
	}
	query := `
		SELECT i.id, i.orcamento_id, i.servico_id, COALESCE(s.nome, ''), i.descricao, i.quantidade, i.valor_unitario, i.valor_total, i.ordem
		FROM orcamento_itens i
		LEFT JOIN servicos s ON s.id = i.servico_id
		WHERE i.orcamento_id = ANY($1)
		ORDER BY i.orcamento_id, i.ordem ASC`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list orcamento itens: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrcamentoItem
		if err := rows.Scan(&it.ID, &it.OrcamentoID, &it.ServicoID, &it.ServicoNome, &it.Descricao, &it.Quantidade, &it.ValorUnitario, &it.ValorTotal, &it.Ordem); err != nil {
			return fmt.Errorf("scan orcamento item: %w", err)
		}
		if o, ok := porID[it.OrcamentoID]; ok {
			o.Itens = append(o.Itens, it)
		}
	}
	return rows.Err()
}

// List pagina por created_at desc; status vazio lista todos.
func (r *OrcamentoRepo) List(status string, limit, offset int) ([]*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

// ListPainel ordena por validade desc (lista do painel).
func (r *OrcamentoRepo) ListPainel(limit, offset int) ([]*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos ORDER BY validade DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// UpdateStatus atualiza apenas o status do orçamento.
func (r *OrcamentoRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orcamentos SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update orcamento status: %w", err)
	}
	return nil
}

func (r *OrcamentoRepo) list(query string, args ...any) ([]*entity.Orcamento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		var o entity.Orcamento
		var criadoPor *string
		if err := rows.Scan(
			&o.ID, &o.Numero, &o.ClienteNome, &o.ClienteEmail, &o.ClienteTelefone, &o.ClienteEndereco,
			&o.EmpresaInfo, &o.Subtotal, &o.Desconto, &o.Total, &o.Validade, &o.Status,
			&o.Observacoes, &o.Condicoes, &criadoPor, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		if criadoPor != nil {
			o.CriadoPor = *criadoPor
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	if err := r.carregarItens(list); err != nil {
		return nil, err
	}
	return list, nil
}
