package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credimovil/backoffice-api/internal/application/auth"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	pkgjwt "github.com/credimovil/backoffice-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

func testUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "test",
	})
	return uc, repo
}

func TestRegister_CreaUsuarioConHashYToken(t *testing.T) {
	uc, repo := testUseCase()

	token, err := uc.Register(context.Background(), "ana@credimovil.co", "Ana", "clave-segura-123", entity.RoleBodeguero)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user := repo.users["ana@credimovil.co"]
	require.NotNil(t, user)
	assert.NotEqual(t, "clave-segura-123", user.PasswordHash, "la contraseña nunca se guarda en claro")

	userID, role, err := pkgjwt.Parse("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.Register(context.Background(), "ana@credimovil.co", "Ana", "clave-segura-123", entity.RoleAdmin)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "ana@credimovil.co", "Otra Ana", "otra-clave-456", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidasDevuelveTokenYRol(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(context.Background(), "ana@credimovil.co", "Ana", "clave-segura-123", entity.RoleVendedor)
	require.NoError(t, err)

	token, role, err := uc.Login(context.Background(), "ana@credimovil.co", "clave-segura-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleVendedor, role)
}

func TestLogin_PasswordIncorrectaRetornaUnauthorized(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(context.Background(), "ana@credimovil.co", "Ana", "clave-segura-123", entity.RoleVendedor)
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "ana@credimovil.co", "clave-equivocada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteRetornaUnauthorized(t *testing.T) {
	uc, _ := testUseCase()

	// Mismo error que password incorrecta: no filtramos qué emails existen.
	_, _, err := uc.Login(context.Background(), "nadie@credimovil.co", "lo-que-sea")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
