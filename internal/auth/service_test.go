package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgauth "github.com/kisansetu/kisansetu-server/pkg/auth"
	"github.com/kisansetu/kisansetu-server/pkg/config"
	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "kisansetu",
		ExpirationMinutes: 120,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func setupAuthService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	svc, err := NewService(NewRepository(db), testJWTConfig(), testPasswordConfig())
	require.NoError(t, err)
	return svc
}

func TestRegisterIssuesTokenWithRole(t *testing.T) {
	ctx := context.Background()
	svc := setupAuthService(t)

	result, err := svc.Register(ctx, RegisterInput{
		Email:    "Ravi@Example.com",
		Password: "grow-strong-2024",
		Role:     enums.RoleFarmer,
	})
	require.NoError(t, err)
	require.Equal(t, "ravi@example.com", result.Email)
	require.Equal(t, enums.RoleFarmer, result.Role)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Token)
	require.NoError(t, err)
	require.Equal(t, "ravi@example.com", claims.Email)
	require.Equal(t, enums.RoleFarmer, claims.Role)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	ctx := context.Background()
	svc := setupAuthService(t)

	input := RegisterInput{Email: "a@b.com", Password: "secret-pass", Role: enums.RoleCustomer}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := setupAuthService(t)

	_, err := svc.Register(ctx, RegisterInput{
		Email:    "meera@example.com",
		Password: "harvest-moon",
		Role:     enums.RoleCustomer,
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: "meera@example.com", Password: "harvest-moon"})
	require.NoError(t, err)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Token)
	require.NoError(t, err)
	require.Equal(t, enums.RoleCustomer, claims.Role)

	_, err = svc.Login(ctx, LoginInput{Email: "meera@example.com", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
}

func TestRegisterValidation(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "", Password: "x"})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: ""})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
