package model

import (
	"time"
)

// Status de moderação do anúncio
const (
	ListingPending  = "pending"
	ListingActive   = "active"
	ListingRejected = "rejected"
)

// Status de pagamento do anúncio, acompanhado separadamente da moderação:
// um anúncio pode ser aprovado antes ou depois da confirmação da taxa.
const (
	ListingPaymentPending  = "pending"
	ListingPaymentPaid     = "paid"
	ListingPaymentVerified = "verified"
	ListingPaymentRejected = "rejected"
)

type Listing struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	UserID        int64      `gorm:"not null;index" json:"user_id"`
	AnonimaxID    string     `gorm:"column:anonimax_id;size:20;index" json:"anonimax_id"`
	ProfileID     *int64     `json:"profile_id,omitempty"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Category      string     `gorm:"size:50;index" json:"category"`
	City          string     `gorm:"size:50;index" json:"city"`
	Price         float64    `gorm:"type:decimal(10,2)" json:"price"`
	Currency      string     `gorm:"size:10" json:"currency"`
	Tags          string     `gorm:"size:255" json:"tags,omitempty"`
	Status        string     `gorm:"size:20;default:pending;index" json:"status"`
	PaymentStatus string     `gorm:"size:20;default:pending;index" json:"payment_status"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// Live informa se o anúncio pode aparecer para o público: conteúdo aprovado
// e taxa confirmada por um operador.
func (l *Listing) Live() bool {
	return l.Status == ListingActive && l.PaymentStatus == ListingPaymentVerified
}
