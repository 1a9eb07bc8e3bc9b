package model

import (
	"time"
)

// Tipos de plano
const (
	PlanFree    = "free"
	PlanSingle  = "single"
	PlanMonthly = "monthly"
)

// Status de assinatura
const (
	SubscriptionActive     = "active"
	SubscriptionSuperseded = "superseded"
	SubscriptionExpired    = "expired"
)

type Subscription struct {
	ID                int64     `gorm:"primaryKey" json:"id"`
	UserID            int64     `gorm:"not null;index" json:"user_id"`
	PlanType          string    `gorm:"size:20;not null" json:"plan_type"` // free, single, monthly
	Status            string    `gorm:"size:20;default:active;index" json:"status"`
	SingleCredits     int       `gorm:"default:0" json:"single_credits"`
	MonthlyPostsToday int       `gorm:"default:0" json:"monthly_posts_today"`
	// LastPostDate e MonthlyExpiresAt são datas de calendário (YYYY-MM-DD);
	// a comparação lexicográfica equivale à cronológica nesse formato.
	LastPostDate     string    `gorm:"size:10" json:"last_post_date"`
	MonthlyExpiresAt *string   `gorm:"size:10" json:"monthly_expires_at,omitempty"`
	Version          int64     `gorm:"default:0" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
