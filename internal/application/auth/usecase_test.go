package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.byEmail {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) Delete(id string) error { return nil }

const testSecret = "secret-para-tests-de-auth"

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
}

func TestRegisterUser_HasheaYAplicaDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@test.local",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@test.local", out.Name, "sin nombre, usa el email")
	assert.Equal(t, entity.RoleCustomer, out.Role, "rol por defecto: customer")

	stored := repo.byEmail["ana@test.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash, "nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-larga")))
}

func TestRegisterUser_Errores(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@test.local"})
	assert.ErrorIs(t, err, domain.ErrMissingFields, "sin password")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@test.local", Password: "12345678", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol no reconocido")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@test.local", Password: "12345678"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@test.local", Password: "87654321"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@test.local",
		Password: "12345678",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@test.local", Password: "12345678"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token lleva identidad y rol verificables.
	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.local", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@test.local", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
