package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaobella/salao-api/internal/application/auth"
	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/pkg/jwt"
)

type memUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por e-mail
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *memUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.Email]; ok {
		return domain.ErrEmailJaCadastrado
	}
	cp := *u
	r.usuarios[u.Email] = &cp
	return nil
}

func (r *memUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.usuarios[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func novoAuthUC(repo *memUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "salao-api-test",
	})
}

func TestRegister_NormalizaEmailENaoVazaSenha(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := novoAuthUC(repo)

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "  Maria@Example.COM ",
		Password: "senha-forte-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", resp.Email)
	assert.Equal(t, "maria@example.com", resp.Nome, "nome default é o e-mail")
	assert.Equal(t, entity.RoleRecepcao, resp.Role, "role default é recepção")

	armazenado := repo.usuarios["maria@example.com"]
	require.NotNil(t, armazenado)
	assert.NotEqual(t, "senha-forte-123", armazenado.SenhaHash, "a senha nunca é persistida em claro")
	assert.True(t, armazenado.Ativo)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := novoAuthUC(newMemUsuarioRepo())

	_, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "MARIA@example.com", Password: "outra-senha-456"})
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado, "comparação de e-mail é case-insensitive")
}

func TestRegister_Validacoes(t *testing.T) {
	uc := novoAuthUC(newMemUsuarioRepo())

	_, err := uc.Register(dto.RegisterRequest{Password: "senha-forte-123"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "e-mail obrigatório")

	_, err = uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "senha mínima de 8 caracteres")
}

func TestLogin_EmiteTokenComClaimsDoUsuario(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := novoAuthUC(repo)
	registrado, err := uc.Register(dto.RegisterRequest{
		Nome: "Maria", Email: "maria@example.com", Password: "senha-forte-123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha-forte-123"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registrado.ID, resp.User.ID)

	userID, role, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registrado.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := novoAuthUC(repo)
	_, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.Login(dto.LoginRequest{Email: "ninguem@example.com", Password: "senha-forte-123"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado, "usuário inexistente é indistinguível de senha errada")
}

func TestLogin_UsuarioInativoNaoEntra(t *testing.T) {
	repo := newMemUsuarioRepo()
	uc := novoAuthUC(repo)
	_, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)
	repo.usuarios["maria@example.com"].Ativo = false

	_, err = uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}
