package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var ErrProfileNotFound = errors.New("perfil não encontrado")

type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOrCreate retorna o perfil do usuário, criando o registro vazio na
// primeira consulta. Um perfil por conta, amarrado ao Anonimax ID.
func (s *ProfileService) GetOrCreate(user *model.User) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = &model.Profile{
		UserID:     user.ID,
		AnonimaxID: user.AnonimaxID,
		IsActive:   true,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update edição do próprio perfil, campo a campo.
func (s *ProfileService) Update(user *model.User, req *dto.UpdateProfileRequest) (*model.Profile, error) {
	profile, err := s.GetOrCreate(user)
	if err != nil {
		return nil, err
	}

	if req.SessionID != nil {
		profile.SessionID = *req.SessionID
	}
	if req.CryptoAddress != nil {
		profile.CryptoAddress = *req.CryptoAddress
	}
	if req.CryptoType != nil {
		profile.CryptoType = *req.CryptoType
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetPublic perfil visível a visitantes, pelo Anonimax ID.
func (s *ProfileService) GetPublic(anonimaxID string) (*dto.ProfilePublic, error) {
	profile, err := s.profileRepo.GetByAnonimaxID(anonimaxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if !profile.IsActive {
		return nil, ErrProfileNotFound
	}
	return toProfilePublic(profile), nil
}

// Browse busca pública de perfis ativos.
func (s *ProfileService) Browse(q *dto.ProfileQuery) ([]dto.ProfilePublic, int64, error) {
	profiles, total, err := s.profileRepo.ListActive(q.Search, q.City, q.Page, q.PageSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ProfilePublic, 0, len(profiles))
	for i := range profiles {
		out = append(out, *toProfilePublic(&profiles[i]))
	}
	return out, total, nil
}

// toProfilePublic projeta o perfil sem nada que ligue à conta (user_id,
// email ficam de fora).
func toProfilePublic(p *model.Profile) *dto.ProfilePublic {
	return &dto.ProfilePublic{
		AnonimaxID:    p.AnonimaxID,
		SessionID:     p.SessionID,
		CryptoAddress: p.CryptoAddress,
		CryptoType:    p.CryptoType,
		City:          p.City,
		Bio:           p.Bio,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
