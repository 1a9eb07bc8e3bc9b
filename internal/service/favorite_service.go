package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/anonid"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var (
	ErrFavoriteExists    = errors.New("este perfil já está nos seus favoritos")
	ErrFavoriteNotFound  = errors.New("favorito não encontrado")
	ErrInvalidAnonimaxID = errors.New("Anonimax ID inválido")
)

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	profileRepo  *repository.ProfileRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, profileRepo *repository.ProfileRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		profileRepo:  profileRepo,
	}
}

// Add favorita um perfil pelo Anonimax ID do alvo.
func (s *FavoriteService) Add(userID int64, targetAnonimaxID string) (*model.Favorite, error) {
	if !anonid.Valid(targetAnonimaxID) {
		return nil, ErrInvalidAnonimaxID
	}

	fav := &model.Favorite{
		UserID:           userID,
		TargetAnonimaxID: targetAnonimaxID,
	}
	if err := s.favoriteRepo.Add(fav); err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorited) {
			return nil, ErrFavoriteExists
		}
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) Remove(userID int64, targetAnonimaxID string) error {
	err := s.favoriteRepo.Remove(userID, targetAnonimaxID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

// List favoritos do usuário com o perfil associado, quando ainda existe.
func (s *FavoriteService) List(userID int64) ([]dto.FavoriteInfo, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FavoriteInfo, 0, len(favorites))
	for _, fav := range favorites {
		info := dto.FavoriteInfo{
			ID:               fav.ID,
			TargetAnonimaxID: fav.TargetAnonimaxID,
			CreatedAt:        fav.CreatedAt.Format(time.RFC3339),
		}
		// Perfil desativado ou removido: o favorito fica sem detalhe.
		if profile, err := s.profileRepo.GetByAnonimaxID(fav.TargetAnonimaxID); err == nil && profile.IsActive {
			info.Profile = toProfilePublic(profile)
		}
		out = append(out, info)
	}
	return out, nil
}
