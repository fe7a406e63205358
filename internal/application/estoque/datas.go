package estoque

import (
	"strings"
	"time"
)

// Formatos de data aceitos no cadastro de produto.
var formatosData = []string{"2006-01-02", "01/02/2006"}

// NormalizarData interpreta "YYYY-MM-DD" ou "MM/DD/YYYY". Qualquer outro
// formato devolve nil: a data é descartada em silêncio, não rejeitada.
// Leniência conhecida do comportamento de referência, mantida de propósito.
func NormalizarData(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range formatosData {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
