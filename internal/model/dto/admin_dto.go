package dto

// VerifyPaymentRequest decisão do operador sobre um pagamento
type VerifyPaymentRequest struct {
	Action string `json:"action" binding:"required,oneof=verify reject"`
}

// ReviewListingRequest decisão do operador sobre o conteúdo de um anúncio
type ReviewListingRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// PlatformStats números agregados do painel administrativo
type PlatformStats struct {
	Users    UserStats    `json:"users"`
	Listings ListingStats `json:"listings"`
	Payments PaymentStats `json:"payments"`
}

type UserStats struct {
	Total    int64 `json:"total"`
	Verified int64 `json:"verified"`
}

type ListingStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Pending int64 `json:"pending"`
}

type PaymentStats struct {
	Pending      int64   `json:"pending"`
	Verified     int64   `json:"verified"`
	TotalRevenue float64 `json:"total_revenue"`
}
