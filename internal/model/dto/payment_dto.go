package dto

// SubmitPaymentRequest envio de comprovante de pagamento.
// Exatamente um alvo: um plano (plan_type) ou a taxa de um anúncio (listing_id).
type SubmitPaymentRequest struct {
	PlanType  string  `json:"plan_type,omitempty" binding:"omitempty,oneof=single monthly"`
	ListingID *int64  `json:"listing_id,omitempty"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency" binding:"required,max=10"` // validada contra model.SupportedCurrencies no service
	Network   string  `json:"network,omitempty" binding:"omitempty,max=20"`
	TxHash    string  `json:"tx_hash" binding:"required,max=120"`
}

// PaymentInfo dados de um pagamento retornados ao usuário
type PaymentInfo struct {
	ID         int64   `json:"id"`
	PlanType   string  `json:"plan_type,omitempty"`
	ListingID  *int64  `json:"listing_id,omitempty"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Network    string  `json:"network,omitempty"`
	TxHash     string  `json:"tx_hash"`
	Status     string  `json:"status"`
	VerifiedAt string  `json:"verified_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// PaymentAddressInfo endereço de recebimento exibido no checkout
type PaymentAddressInfo struct {
	Currency string  `json:"currency"`
	Network  string  `json:"network"`
	Address  string  `json:"address"`
	Rate     string  `json:"rate,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
}
