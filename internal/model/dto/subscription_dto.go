package dto

// EntitlementInfo resultado da avaliação de direito de postagem
type EntitlementInfo struct {
	CanPost bool   `json:"can_post"`
	Message string `json:"message"`
}

// SubscriptionInfo assinatura corrente do usuário
type SubscriptionInfo struct {
	ID                int64            `json:"id,omitempty"`
	PlanType          string           `json:"plan_type"`
	Status            string           `json:"status,omitempty"`
	SingleCredits     int              `json:"single_credits"`
	MonthlyPostsToday int              `json:"monthly_posts_today"`
	LastPostDate      string           `json:"last_post_date,omitempty"`
	MonthlyExpiresAt  string           `json:"monthly_expires_at,omitempty"`
	Entitlement       *EntitlementInfo `json:"entitlement"`
}

// PlanInfo item do catálogo de planos
type PlanInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}
