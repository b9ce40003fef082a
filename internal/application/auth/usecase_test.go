package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/application/auth"
	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/jwt"
)

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	repo, err := memory.NewAccountRepository(config.AuthConfig{
		AdminUser: "admin", AdminPassword: "admin",
		StaffUser: "staff", StaffPassword: "staff",
	})
	require.NoError(t, err)
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"})
}

func TestLogin_AdminYStaff(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, 3600, out.ExpiresIn)

	id, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, id.Role)
	assert.Equal(t, "admin", id.Username)

	out, err = uc.Login(ctx, dto.LoginRequest{Username: "STAFF", Password: "staff"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.User.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "admin"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccounts_SinHash(t *testing.T) {
	uc := newAuth(t)
	list, err := uc.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].Username)
	assert.Equal(t, "ADMINISTRATOR", list[0].FullName)
}
