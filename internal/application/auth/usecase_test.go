package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	"github.com/asxpathway/pathway-api/pkg/config"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by username
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Username] = u; return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}
func (f *fakeUserRepo) Update(*entity.User) error { return nil }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "asx-pathway"}
}

func repoWithUser(t *testing.T, username, password string) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]*entity.User{
		username: {ID: "user-1", Username: username, PasswordHash: string(hash), Role: entity.RoleFounder},
	}}
}

func TestLoginIssuesToken(t *testing.T) {
	uc := NewUseCase(repoWithUser(t, "founder_demo", "demo123"), testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "founder_demo", Password: "demo123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "founder_demo", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := NewUseCase(repoWithUser(t, "founder_demo", "demo123"), testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "founder_demo", Password: "nope"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	uc := NewUseCase(repoWithUser(t, "founder_demo", "demo123"), testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "ghost", Password: "demo123"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginMissingCredentials(t *testing.T) {
	uc := NewUseCase(repoWithUser(t, "founder_demo", "demo123"), testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "founder_demo"})
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
