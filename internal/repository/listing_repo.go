package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

// ErrNotReviewable indica que o anúncio já saiu do estado pendente de
// moderação.
var ErrNotReviewable = errors.New("listing is not pending review")

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(listing *model.Listing) error {
	return r.db.Create(listing).Error
}

func (r *ListingRepository) GetByID(id int64) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetByIDForUser busca respeitando a posse do registro.
func (r *ListingRepository) GetByIDForUser(id, userID int64) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) ListByUser(userID int64) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

// LiveFilter filtros da busca pública.
type LiveFilter struct {
	Category string
	City     string
	Search   string
	Page     int
	PageSize int
}

// ListLive retorna apenas anúncios visíveis ao público: conteúdo aprovado
// E taxa verificada. É o contrato do caminho de leitura; o ledger em si
// não bloqueia nada.
func (r *ListingRepository) ListLive(f LiveFilter) ([]model.Listing, int64, error) {
	query := r.db.Model(&model.Listing{}).
		Where("status = ? AND payment_status = ?", model.ListingActive, model.ListingPaymentVerified)

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.City != "" {
		query = query.Where("city = ?", f.City)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}

	var listings []model.Listing
	err := query.Order("created_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&listings).Error
	return listings, total, err
}

func (r *ListingRepository) Update(listing *model.Listing) error {
	return r.db.Save(listing).Error
}

func (r *ListingRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Listing{}).Where("id = ?", id).Updates(fields).Error
}

// Review aplica a decisão de moderação; só vale enquanto o anúncio está
// pendente.
func (r *ListingRepository) Review(id int64, status string, expiresAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if expiresAt != nil {
		updates["expires_at"] = expiresAt
	}

	result := r.db.Model(&model.Listing{}).
		Where("id = ? AND status = ?", id, model.ListingPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotReviewable
	}
	return nil
}

// SetPaymentStatus atualiza apenas o estado de pagamento do anúncio;
// ortogonal à moderação de conteúdo.
func (r *ListingRepository) SetPaymentStatus(id int64, paymentStatus string) error {
	return r.db.Model(&model.Listing{}).
		Where("id = ?", id).
		Update("payment_status", paymentStatus).Error
}

// MarkFeePaid registra o envio do comprovante da taxa. Só transiciona a
// partir de pending/rejected: verified é decisão de operador e reenvio
// do usuário nunca rebaixa. Reenvio sobre verified é no-op silencioso.
func (r *ListingRepository) MarkFeePaid(id int64) error {
	return r.db.Model(&model.Listing{}).
		Where("id = ? AND payment_status IN ?", id,
			[]string{model.ListingPaymentPending, model.ListingPaymentRejected}).
		Update("payment_status", model.ListingPaymentPaid).Error
}

func (r *ListingRepository) ListAll(status string, limit int) ([]model.Listing, error) {
	var listings []model.Listing
	query := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&listings).Error
	return listings, err
}

func (r *ListingRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Listing{}).Count(&count).Error
	return count, err
}

func (r *ListingRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Listing{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// DeactivateExpired rebaixa anúncios ativos cujo prazo venceu.
func (r *ListingRepository) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&model.Listing{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", model.ListingActive, now).
		Update("status", model.ListingRejected)
	return result.RowsAffected, result.Error
}

func (r *ListingRepository) Delete(id, userID int64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
