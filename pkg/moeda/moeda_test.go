package moeda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salaobella/salao-api/pkg/moeda"
)

func TestFormatBRL(t *testing.T) {
	casos := []struct {
		valor  decimal.Decimal
		espera string
	}{
		{decimal.NewFromInt(0), "R$ 0,00"},
		{decimal.NewFromInt(130), "R$ 130,00"},
		{decimal.NewFromFloat(1234.56), "R$ 1.234,56"},
		{decimal.NewFromFloat(9.9), "R$ 9,90"},
	}
	for _, tc := range casos {
		assert.Equal(t, tc.espera, moeda.FormatBRL(tc.valor))
	}
}
