package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

// ErrAlreadyFinalized indica que o pagamento já saiu do estado pendente;
// verified e rejected são terminais.
var ErrAlreadyFinalized = errors.New("payment already finalized")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetByID(id int64) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Finalize aplica a decisão do operador. A atualização é condicionada a
// status=pending: dois operadores decidindo ao mesmo tempo não podem
// ambos vencer, e um pagamento terminal nunca muda de novo.
func (r *PaymentRepository) Finalize(id int64, status string, verifiedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if verifiedAt != nil {
		updates["verified_at"] = verifiedAt
	}

	result := r.db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.PaymentPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}

func (r *PaymentRepository) ListByUser(userID int64) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListByStatus(status string, limit int) ([]model.Payment, error) {
	var payments []model.Payment
	query := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumVerified soma o valor dos pagamentos verificados (receita).
func (r *PaymentRepository) SumVerified() (float64, error) {
	var total float64
	err := r.db.Model(&model.Payment{}).
		Where("status = ?", model.PaymentVerified).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
