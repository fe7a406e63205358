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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoCols = `id, nome, categoria, quantidade_atual, quantidade_minima, preco_custo, preco_venda, validade, fornecedor_principal_id, created_at, updated_at`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	fornecedorID := (*string)(nil)
	if p.FornecedorPrincipalID != "" {
		fornecedorID = &p.FornecedorPrincipalID
	}
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Categoria, p.QuantidadeAtual, p.QuantidadeMinima,
		p.PrecoCusto, p.PrecoVenda, p.Validade, fornecedorID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve (nil, nil) se não existir.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1`
	return r.scanProduto(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtém um produto bloqueando a linha (SELECT FOR UPDATE).
// Só faz sentido dentro de transação; serializa movimentações concorrentes.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanProduto(r.q.QueryRow(context.Background(), query, id))
}

// UpdateQuantidade atualiza somente a quantidade (usado pelo razão de estoque).
func (r *ProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade_atual = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// Update atualiza os dados cadastrais. Não toca em quantidade_atual
// (alterada apenas via movimentações).
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, categoria = $3, quantidade_minima = $4, preco_custo = $5,
		    preco_venda = $6, validade = $7, fornecedor_principal_id = $8, updated_at = $9
		WHERE id = $1`
	fornecedorID := (*string)(nil)
	if p.FornecedorPrincipalID != "" {
		fornecedorID = &p.FornecedorPrincipalID
	}
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Categoria, p.QuantidadeMinima, p.PrecoCusto,
		p.PrecoVenda, p.Validade, fornecedorID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// List lista produtos com paginação, mais recentes primeiro.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProdutoRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) scanProduto(row pgx.Row) (*entity.Produto, error) {
	p, err := scanProdutoRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

func scanProdutoRow(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var fornecedorID *string
	if err := row.Scan(
		&p.ID, &p.Nome, &p.Categoria, &p.QuantidadeAtual, &p.QuantidadeMinima,
		&p.PrecoCusto, &p.PrecoVenda, &p.Validade, &fornecedorID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if fornecedorID != nil {
		p.FornecedorPrincipalID = *fornecedorID
	}
	return &p, nil
}
