package entity

import "time"

// Configuracao é um par chave/valor de configuração mutável do salão
// (ex.: capacidade máxima da agenda). Acesso sempre por chave explícita;
// não há singleton em processo.
type Configuracao struct {
	Chave     string
	Valor     string
	UpdatedAt time.Time
}
