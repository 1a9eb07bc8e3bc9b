package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

// ErrStaleVersion indica que a escrita condicional perdeu para outra
// transação: o chamador deve reler a assinatura e reavaliar o direito
// de postagem antes de tentar de novo.
var ErrStaleVersion = errors.New("subscription version mismatch")

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepository) GetByID(id int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetActiveByUser retorna a assinatura ativa mais recente do usuário,
// ou nil quando não há nenhuma.
func (r *SubscriptionRepository) GetActiveByUser(userID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ? AND status = ?", userID, model.SubscriptionActive).
		Order("id DESC").First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// UpdateConsume persiste o consumo de um direito de postagem com checagem
// otimista de versão. Sem linha afetada significa escrita concorrente.
func (r *SubscriptionRepository) UpdateConsume(sub *model.Subscription) error {
	result := r.db.Model(&model.Subscription{}).
		Where("id = ? AND version = ?", sub.ID, sub.Version).
		Updates(map[string]interface{}{
			"single_credits":      sub.SingleCredits,
			"monthly_posts_today": sub.MonthlyPostsToday,
			"last_post_date":      sub.LastPostDate,
			"version":             sub.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleVersion
	}
	sub.Version++
	return nil
}

// SupersedeActive desativa as assinaturas ativas do usuário; elas são
// substituídas, nunca apagadas.
func (r *SubscriptionRepository) SupersedeActive(userID int64) error {
	return r.db.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ?", userID, model.SubscriptionActive).
		Update("status", model.SubscriptionSuperseded).Error
}

// ExpireMonthlyBefore marca como expiradas as assinaturas mensais cuja
// validade terminou antes da data dada (YYYY-MM-DD).
func (r *SubscriptionRepository) ExpireMonthlyBefore(today string) (int64, error) {
	result := r.db.Model(&model.Subscription{}).
		Where("plan_type = ? AND status = ? AND monthly_expires_at IS NOT NULL AND monthly_expires_at < ?",
			model.PlanMonthly, model.SubscriptionActive, today).
		Update("status", model.SubscriptionExpired)
	return result.RowsAffected, result.Error
}

func (r *SubscriptionRepository) ListByUser(userID int64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&subs).Error
	return subs, err
}
