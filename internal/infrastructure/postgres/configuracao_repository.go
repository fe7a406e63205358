package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

var _ repository.ConfiguracaoRepository = (*ConfiguracaoRepo)(nil)

// ConfiguracaoRepo armazenamento chave/valor de configurações do salão.
type ConfiguracaoRepo struct {
	q Querier
}

// NewConfiguracaoRepository constrói o adaptador de configurações. Passar pool ou tx (Querier).
func NewConfiguracaoRepository(q Querier) *ConfiguracaoRepo {
	return &ConfiguracaoRepo{q: q}
}

// Get obtém uma configuração por chave. Devolve (nil, nil) se não existir.
func (r *ConfiguracaoRepo) Get(chave string) (*entity.Configuracao, error) {
	var c entity.Configuracao
	err := r.q.QueryRow(context.Background(),
		`SELECT chave, valor, updated_at FROM configuracoes WHERE chave = $1`, chave,
	).Scan(&c.Chave, &c.Valor, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracao: %w", err)
	}
	return &c, nil
}

// Set grava (upsert) uma configuração.
func (r *ConfiguracaoRepo) Set(chave, valor string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO configuracoes (chave, valor, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chave) DO UPDATE SET valor = EXCLUDED.valor, updated_at = now()`,
		chave, valor,
	)
	if err != nil {
		return fmt.Errorf("set configuracao: %w", err)
	}
	return nil
}
