package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/anonid"
	"github.com/anonimax/anonimax-server/internal/pkg/email"
	"github.com/anonimax/anonimax-server/internal/pkg/jwt"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("este email já está cadastrado")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrInvalidVerifyToken = errors.New("token de verificação inválido")
	ErrInvalidResetToken  = errors.New("token de redefinição inválido ou expirado")
)

type AuthService struct {
	userRepo *repository.UserRepository
	email    *email.Service
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, emailSvc *email.Service, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    emailSvc,
		cfg:      cfg,
	}
}

// Register cria a conta pseudônima: email+senha viram um Anonimax ID único;
// o email serve só para login e recuperação, nunca aparece em público.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	anonimaxID, err := s.uniqueAnonimaxID()
	if err != nil {
		return nil, err
	}

	verifyToken, err := anonid.NewToken(32)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:             req.Email,
		PasswordHash:      string(hash),
		AnonimaxID:        anonimaxID,
		IsVerified:        false,
		VerificationToken: &verifyToken,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.Frontend.Host, verifyToken)
	if err := s.email.SendVerificationLink(user.Email, link, user.AnonimaxID); err != nil {
		// Cadastro não falha por causa do email; o usuário pode reenviar.
		log.Printf("auth: failed to send verification email to user %d: %v", user.ID, err)
	}

	token, err := jwt.GenerateToken(user.ID, user.IsAdmin, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Token:   token,
		User:    toUserInfo(user),
		Message: "Conta criada. Confira seu email para confirmar o cadastro.",
	}, nil
}

// Login autentica e emite o JWT.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.IsAdmin, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  toUserInfo(user),
	}, nil
}

// VerifyEmail confirma o cadastro pelo token enviado por email.
func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.userRepo.GetByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidVerifyToken
		}
		return err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	return s.userRepo.Update(user)
}

// ForgotPassword gera um token de redefinição com validade de 1 hora.
// Email desconhecido não vaza: a resposta é a mesma.
func (s *AuthService) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := anonid.NewToken(32)
	if err != nil {
		return err
	}

	expires := time.Now().Add(time.Hour)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Frontend.Host, token)
	if err := s.email.SendPasswordReset(user.Email, link); err != nil {
		log.Printf("auth: failed to send reset email to user %d: %v", user.ID, err)
	}
	return nil
}

// ResetPassword troca a senha com o token de redefinição.
func (s *AuthService) ResetPassword(token, password string) error {
	user, err := s.userRepo.GetByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now()) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.ResetToken = nil
	user.ResetTokenExpires = nil
	return s.userRepo.Update(user)
}

// User carrega o registro completo do usuário autenticado, para os fluxos
// que precisam do modelo (postagem, pagamento).
func (s *AuthService) User(userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// GetUser retorna os dados da conta para o próprio usuário.
func (s *AuthService) GetUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *AuthService) uniqueAnonimaxID() (string, error) {
	for i := 0; i < 5; i++ {
		id, err := anonid.New()
		if err != nil {
			return "", err
		}
		exists, err := s.userRepo.ExistsByAnonimaxID(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", errors.New("failed to allocate unique anonimax id")
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		Email:      user.Email,
		AnonimaxID: user.AnonimaxID,
		IsVerified: user.IsVerified,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
	}
}
