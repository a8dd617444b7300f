package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/labtrack/labstock-api/internal/application/auth"
	"github.com/labtrack/labstock-api/internal/application/dto"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

var testJWTCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "labstock-test"}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@lab.example",
		Password: "contraseña-larga",
		Name:     "Ana",
		Role:     entity.RoleLabTechnician,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ana@lab.example", resp.Email)
	assert.Equal(t, entity.RoleLabTechnician, resp.Role)
	assert.Equal(t, "active", resp.Status)

	// El hash queda en el repo y nunca sale en la respuesta.
	stored := repo.byEmail["ana@lab.example"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-larga")))
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@lab.example", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@lab.example", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolPorDefectoYRolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	// Sin rol explícito el usuario queda como Researcher (solo lectura).
	resp, err := uc.RegisterUser(dto.RegisterRequest{Email: "sin-rol@lab.example", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleResearcher, resp.Role)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		Email:    "rol-raro@lab.example",
		Password: "contraseña-larga",
		Role:     "Superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@lab.example",
		Password: "contraseña-larga",
		Role:     entity.RoleEngineer,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@lab.example", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleEngineer, resp.User.Role)

	// El token lleva el id y el rol del usuario.
	userID, role, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleEngineer, role)
}

func TestLogin_Errores(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@lab.example", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@lab.example", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@lab.example", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byEmail["ana@lab.example"].Status = "disabled"
	_, err = uc.Login(dto.LoginRequest{Email: "ana@lab.example", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
