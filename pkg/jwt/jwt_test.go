package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/pkg/jwt"
)

const segredo = "segredo-de-teste"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(segredo, "user-1", "admin", "salao-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse(segredo, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestParse_SecretErradoFalha(t *testing.T) {
	token, err := jwt.Generate(segredo, "user-1", "recepcao", "salao-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParse_TokenExpiradoFalha(t *testing.T) {
	token, err := jwt.Generate(segredo, "user-1", "recepcao", "salao-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(segredo, token)
	assert.Error(t, err, "token com expiração no passado deve ser rejeitado")
}

func TestParse_TokenAdulteradoFalha(t *testing.T) {
	token, err := jwt.Generate(segredo, "user-1", "recepcao", "salao-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(segredo, token+"x")
	assert.Error(t, err)

	_, _, err = jwt.Parse(segredo, "nao.e.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVazioFalha(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "admin", "salao-api", 60)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "qualquer")
	assert.Error(t, err)
}
