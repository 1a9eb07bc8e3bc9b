package dto

// CreateListingRequest criação de anúncio
type CreateListingRequest struct {
	ProfileID   *int64  `json:"profile_id,omitempty"`
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=5000"`
	Category    string  `json:"category" binding:"required,max=50"`
	City        string  `json:"city,omitempty" binding:"omitempty,max=50"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,max=10"`
	Tags        string  `json:"tags,omitempty" binding:"omitempty,max=255"`
}

// UpdateListingRequest atualização parcial de anúncio
type UpdateListingRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	City        *string  `json:"city,omitempty" binding:"omitempty,max=50"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Currency    *string  `json:"currency,omitempty" binding:"omitempty,max=10"`
	Tags        *string  `json:"tags,omitempty" binding:"omitempty,max=255"`
}

// CreateListingResponse resposta de criação
type CreateListingResponse struct {
	ListingID   int64  `json:"listing_id"`
	Status      string `json:"status"`
	Entitlement string `json:"entitlement_message"`
}

// ListingQuery filtros de busca pública
type ListingQuery struct {
	Category string `form:"category"`
	City     string `form:"city"`
	Search   string `form:"q"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
