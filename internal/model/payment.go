package model

import (
	"time"
)

// Status de pagamento
const (
	PaymentPending  = "pending"
	PaymentVerified = "verified"
	PaymentRejected = "rejected"
)

// Moedas aceitas
var SupportedCurrencies = []string{"BTC", "ETH", "USDT", "USDC", "BRZ", "XMR"}

type Payment struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	UserID     int64      `gorm:"not null;index" json:"user_id"`
	AnonimaxID string     `gorm:"column:anonimax_id;size:20" json:"anonimax_id"`
	PlanType   string     `gorm:"size:20" json:"plan_type,omitempty"`
	ListingID  *int64     `gorm:"index" json:"listing_id,omitempty"`
	Amount     float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency   string     `gorm:"size:10;not null" json:"currency"`
	Network    string     `gorm:"size:20" json:"network"`
	TxHash     string     `gorm:"size:120;not null" json:"tx_hash"`
	Status     string     `gorm:"size:20;default:pending;index" json:"status"` // pending, verified, rejected
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
