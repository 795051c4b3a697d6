package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type fakeUserRepo struct {
	user    *db_models.User
	cleared []uint
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.user != nil && f.user.Email == email {
		clone := *f.user
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error { return nil }

func (f *fakeUserRepo) ClearFirstLogin(ctx context.Context, id uint) error {
	f.cleared = append(f.cleared, id)
	return nil
}

func seedUser(t *testing.T, firstLogin bool) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword("Admin123!")
	require.NoError(t, err)
	return &db_models.User{
		ID:           1,
		Email:        "admin@czystepomniki.pl",
		PasswordHash: hash,
		Name:         "Super Administrator",
		Role:         "superadmin",
		IsFirstLogin: firstLogin,
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	repo := &fakeUserRepo{user: seedUser(t, false)}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@czystepomniki.pl",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	assert.Empty(t, repo.cleared)
}

func TestLoginFirstTime(t *testing.T) {
	t.Parallel()
	repo := &fakeUserRepo{user: seedUser(t, true)}
	svc := NewAuthService(repo)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@czystepomniki.pl",
		Password: "Admin123!",
	})
	require.NoError(t, err)

	assert.True(t, resp.User.IsFirstLogin)
	assert.Equal(t, "First login successful. Please change your password.", resp.Message)
	assert.Equal(t, []uint{1}, repo.cleared, "first successful login flips the flag")
}

func TestLoginReturningUser(t *testing.T) {
	t.Parallel()
	repo := &fakeUserRepo{user: seedUser(t, false)}
	svc := NewAuthService(repo)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@czystepomniki.pl",
		Password: "Admin123!",
	})
	require.NoError(t, err)

	assert.False(t, resp.User.IsFirstLogin)
	assert.Empty(t, resp.Message)
	assert.Empty(t, repo.cleared)
	assert.Equal(t, "Super Administrator", resp.User.Name)
}
