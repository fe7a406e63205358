package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.FinanceiroRepository = (*FinanceiroRepo)(nil)

// FinanceiroRepo consultas somente leitura de relatórios financeiros.
type FinanceiroRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceiroRepository constrói o adaptador de relatórios.
func NewFinanceiroRepository(pool *pgxpool.Pool) *FinanceiroRepo {
	return &FinanceiroRepo{pool: pool}
}

// ComissoesPorProfissional agrega comissões do período por profissional.
// Considera apenas atendimentos concluídos e pagos. O percentual do serviço
// prevalece; se for zero, usa o percentual padrão do profissional.
func (r *FinanceiroRepo) ComissoesPorProfissional(
	ctx context.Context,
	inicio, fim time.Time,
) ([]repository.ComissaoResult, error) {
	const query = `
	SELECT
	    p.id                                                               AS profissional_id,
	    p.nome                                                             AS profissional_nome,
	    COUNT(a.id)                                                        AS atendimentos,
	    COALESCE(SUM(a.valor), 0)                                          AS valor_servicos,
	    COALESCE(SUM(
	        a.valor * (
	            CASE
	                WHEN s.comissao_percentual > 0 THEN s.comissao_percentual
	                ELSE p.comissao_percentual
	            END
	        ) / 100
	    ), 0)                                                              AS valor_comissao
	FROM agendamentos a
	JOIN profissionais p ON p.id = a.profissional_id
	JOIN servicos      s ON s.id = a.servico_id
	WHERE a.status = 'CONCLUIDO'
	  AND a.pago
	  AND a.inicio >= $1
	  AND a.inicio < $2
	GROUP BY p.id, p.nome
	ORDER BY valor_comissao DESC`

	rows, err := r.pool.Query(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("financeiro.ComissoesPorProfissional: %w", err)
	}
	defer rows.Close()

	var results []repository.ComissaoResult
	for rows.Next() {
		var row repository.ComissaoResult
		if err := rows.Scan(
			&row.ProfissionalID,
			&row.ProfissionalNome,
			&row.Atendimentos,
			&row.ValorServicos,
			&row.ValorComissao,
		); err != nil {
			return nil, fmt.Errorf("financeiro.ComissoesPorProfissional scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// FluxoCaixaMensal devolve receitas (atendimentos pagos), despesas (contas
// pagas) e saldo por mês do ano. Meses sem lançamentos não aparecem.
func (r *FinanceiroRepo) FluxoCaixaMensal(
	ctx context.Context,
	ano int,
) ([]repository.FluxoCaixaMensalResult, error) {
	const query = `
	WITH receitas AS (
	    SELECT EXTRACT(MONTH FROM inicio)::INT AS mes, SUM(valor) AS total
	    FROM agendamentos
	    WHERE status = 'CONCLUIDO' AND pago AND EXTRACT(YEAR FROM inicio) = $1
	    GROUP BY 1
	),
	despesas AS (
	    SELECT EXTRACT(MONTH FROM data_pagamento)::INT AS mes, SUM(valor) AS total
	    FROM contas_pagar
	    WHERE status = 'PAGO' AND EXTRACT(YEAR FROM data_pagamento) = $1
	    GROUP BY 1
	)
	SELECT
	    COALESCE(r.mes, d.mes)                          AS mes,
	    COALESCE(r.total, 0)                            AS receitas,
	    COALESCE(d.total, 0)                            AS despesas,
	    COALESCE(r.total, 0) - COALESCE(d.total, 0)     AS saldo
	FROM receitas r
	FULL OUTER JOIN despesas d ON d.mes = r.mes
	ORDER BY mes ASC`

	rows, err := r.pool.Query(ctx, query, ano)
	if err != nil {
		return nil, fmt.Errorf("financeiro.FluxoCaixaMensal: %w", err)
	}
	defer rows.Close()

	var results []repository.FluxoCaixaMensalResult
	for rows.Next() {
		row := repository.FluxoCaixaMensalResult{Ano: ano}
		if err := rows.Scan(&row.Mes, &row.Receitas, &row.Despesas, &row.Saldo); err != nil {
			return nil, fmt.Errorf("financeiro.FluxoCaixaMensal scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
