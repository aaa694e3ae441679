package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-api/internal/application/auth"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/panaderia-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios (solo GetByName participa en login).
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byName map[string]entity.User
}

func (m *memUserRepo) Create(u *entity.User) error { m.byName[u.Name] = *u; return nil }
func (m *memUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (m *memUserRepo) GetByName(name string) (*entity.User, error) {
	u, ok := m.byName[name]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}
func (m *memUserRepo) Update(*entity.User) error        { return nil }
func (m *memUserRepo) List() ([]*entity.User, error)    { return nil, nil }
func (m *memUserRepo) Delete(string) error              { return nil }

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(users ...entity.User) *auth.AuthUseCase {
	repo := &memUserRepo{byName: make(map[string]entity.User)}
	for _, u := range users {
		repo.byName[u.Name] = u
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "panaderia-api-test",
	})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ConPassword_TokenConClaims(t *testing.T) {
	uc := newUseCase(entity.User{
		ID:           "u1",
		Name:         "maria",
		Role:         entity.RoleVendedor,
		PasswordHash: hashOf(t, "secreto123"),
	})

	out, err := uc.Login(dto.LoginRequest{Name: "maria", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "maria", out.User.Name)
	assert.Equal(t, entity.RoleVendedor, out.User.Role)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID, "el token identifica al actor de las mutaciones")
	assert.Equal(t, entity.RoleVendedor, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newUseCase(entity.User{
		ID:           "u1",
		Name:         "maria",
		Role:         entity.RoleVendedor,
		PasswordHash: hashOf(t, "secreto123"),
	})

	_, err := uc.Login(dto.LoginRequest{Name: "maria", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuarios migrados sin hash entran solo con nombre.
func TestLogin_UsuarioSinHash_EntraSoloConNombre(t *testing.T) {
	uc := newUseCase(entity.User{ID: "u2", Name: "pedro", Role: entity.RoleCliente})

	out, err := uc.Login(dto.LoginRequest{Name: "pedro"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.User.Role)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Login(dto.LoginRequest{Name: "nadie"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
