package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/anonid"
	"github.com/anonimax/anonimax-server/internal/pkg/email"
	"github.com/anonimax/anonimax-server/internal/repository"
	"github.com/anonimax/anonimax-server/internal/testutil"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 24,
		},
		Frontend: config.FrontendConfig{
			Host: "http://localhost:3000",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	cfg := authTestConfig()
	userRepo := repository.NewUserRepository(db)
	svc := NewAuthService(userRepo, email.NewService(&cfg.Email), cfg)

	t.Run("register assigns anonimax id and token", func(t *testing.T) {
		resp, err := svc.Register(&dto.RegisterRequest{
			Email:    "novo@example.com",
			Password: "senha-segura",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, anonid.Valid(resp.User.AnonimaxID))
		assert.False(t, resp.User.IsVerified)

		stored, err := userRepo.GetByEmail("novo@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored.VerificationToken)
		// A senha nunca é guardada em claro.
		assert.NotEqual(t, "senha-segura", stored.PasswordHash)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Email:    "novo@example.com",
			Password: "outra-senha",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	cfg := authTestConfig()
	userRepo := repository.NewUserRepository(db)
	svc := NewAuthService(userRepo, email.NewService(&cfg.Email), cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.DefaultCost)
	require.NoError(t, err)
	testutil.TestUser(t, db,
		testutil.WithEmail("login@example.com"),
		func(u *model.User) { u.PasswordHash = string(hash) })

	t.Run("valid credentials issue token", func(t *testing.T) {
		resp, err := svc.Login(&dto.LoginRequest{
			Email:    "login@example.com",
			Password: "senha-correta",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "login@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{
			Email:    "login@example.com",
			Password: "senha-errada",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: "nao@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	cfg := authTestConfig()
	userRepo := repository.NewUserRepository(db)
	svc := NewAuthService(userRepo, email.NewService(&cfg.Email), cfg)

	token := "tok-verificacao-123"
	user := testutil.TestUser(t, db,
		testutil.WithUnverified(),
		func(u *model.User) { u.VerificationToken = &token })

	t.Run("invalid token", func(t *testing.T) {
		err := svc.VerifyEmail("tok-errado")
		assert.ErrorIs(t, err, ErrInvalidVerifyToken)
	})

	t.Run("valid token verifies and burns itself", func(t *testing.T) {
		require.NoError(t, svc.VerifyEmail(token))

		stored, err := userRepo.GetByID(user.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsVerified)
		assert.Nil(t, stored.VerificationToken)

		err = svc.VerifyEmail(token)
		assert.ErrorIs(t, err, ErrInvalidVerifyToken)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	cfg := authTestConfig()
	userRepo := repository.NewUserRepository(db)
	svc := NewAuthService(userRepo, email.NewService(&cfg.Email), cfg)

	t.Run("forgot password for unknown email does not leak", func(t *testing.T) {
		assert.NoError(t, svc.ForgotPassword("nao-existe@example.com"))
	})

	t.Run("reset with valid token changes password", func(t *testing.T) {
		user := testutil.TestUser(t, db, testutil.WithEmail("reset@example.com"))
		require.NoError(t, svc.ForgotPassword("reset@example.com"))

		stored, err := userRepo.GetByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ResetToken)

		require.NoError(t, svc.ResetPassword(*stored.ResetToken, "senha-nova-123"))

		_, err = svc.Login(&dto.LoginRequest{
			Email:    "reset@example.com",
			Password: "senha-nova-123",
		})
		assert.NoError(t, err)

		// Token queimado após o uso.
		err = svc.ResetPassword(*stored.ResetToken, "outra-senha")
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := "tok-reset-vencido"
		past := time.Now().Add(-time.Hour)
		testutil.TestUser(t, db, func(u *model.User) {
			u.ResetToken = &token
			u.ResetTokenExpires = &past
		})

		err := svc.ResetPassword(token, "senha-nova")
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})
}
