package repository

import (
	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepository) GetByUserID(userID int64) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByAnonimaxID(anonimaxID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("anonimax_id = ?", anonimaxID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

// ListActive lista perfis públicos ativos, com filtro por cidade e busca
// textual sobre ID, bio e cidade.
func (r *ProfileRepository) ListActive(search, city string, page, pageSize int) ([]model.Profile, int64, error) {
	query := r.db.Model(&model.Profile{}).Where("is_active = ?", true)
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("anonimax_id LIKE ? OR bio LIKE ? OR city LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var profiles []model.Profile
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&profiles).Error
	return profiles, total, err
}
