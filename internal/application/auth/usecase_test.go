package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/survey-pro/internal/application/auth"
	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/survey-pro/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func newTestUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.Config{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "survey-pro-test",
		// Costo mínimo para que los tests no se arrastren hasheando.
		BcryptCost: 4,
	})
}

func registerUser(t *testing.T, uc *auth.AuthUseCase, username, password, role string) {
	t.Helper()
	_, err := uc.Register(dto.RegisterRequest{Username: username, Password: password, Role: role})
	require.NoError(t, err)
}

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	registerUser(t, uc, "ana", "password123", entity.RoleCreator)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)
	assert.Equal(t, entity.RoleCreator, out.User.Role)

	// El rol del token debe coincidir con el almacenado, no con lo que diga el cliente.
	identity, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCreator, identity.Role)
	assert.Equal(t, out.User.ID, identity.UserID)
}

func TestLogin_UsuarioInexistente_ErrorUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_PasswordIncorrecto_ErrorUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	registerUser(t, uc, "ana", "password123", entity.RoleAdmin)

	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"password incorrecto y usuario inexistente deben devolver el mismo error")
}

func TestLogin_CuentaInactiva_ErrorUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	registerUser(t, uc, "ana", "password123", entity.RoleAdmin)
	repo.users["ana"].Status = "inactive"

	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"cuenta inactiva no debe distinguirse de credenciales incorrectas")
}

func TestRegister_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "password123", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	registerUser(t, uc, "ana", "password123", entity.RoleAdmin)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "otropassword", Role: entity.RoleCreator})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_NoAlmacenaPasswordEnClaro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	registerUser(t, uc, "ana", "password123", entity.RoleAdmin)

	stored := repo.users["ana"]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "password123")
}

func TestEnsureDefaultAdmin_CreaYEsIdempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	created, err := uc.EnsureDefaultAdmin("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created, "primera llamada debe crear el admin")

	created, err = uc.EnsureDefaultAdmin("admin", "admin123")
	require.NoError(t, err)
	assert.False(t, created, "segunda llamada no debe crear nada")

	// Y el admin creado puede iniciar sesión con rol admin.
	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}
