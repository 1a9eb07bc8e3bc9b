package dto

// UpdateProfileRequest atualização do perfil pseudônimo
type UpdateProfileRequest struct {
	SessionID     *string `json:"session_id,omitempty" binding:"omitempty,max=100"`
	CryptoAddress *string `json:"crypto_address,omitempty" binding:"omitempty,max=120"`
	CryptoType    *string `json:"crypto_type,omitempty" binding:"omitempty,max=10"`
	City          *string `json:"city,omitempty" binding:"omitempty,max=50"`
	Bio           *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// ProfilePublic perfil visível na busca (sem vínculo com a conta)
type ProfilePublic struct {
	AnonimaxID    string `json:"anonimax_id"`
	SessionID     string `json:"session_id,omitempty"`
	CryptoAddress string `json:"crypto_address,omitempty"`
	CryptoType    string `json:"crypto_type,omitempty"`
	City          string `json:"city,omitempty"`
	Bio           string `json:"bio,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ProfileQuery filtros de busca de perfis
type ProfileQuery struct {
	Search   string `form:"q"`
	City     string `form:"city"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// AddFavoriteRequest favoritar um perfil
type AddFavoriteRequest struct {
	TargetAnonimaxID string `json:"target_anonimax_id" binding:"required,max=20"`
}

// FavoriteInfo favorito com o perfil associado
type FavoriteInfo struct {
	ID               int64          `json:"id"`
	TargetAnonimaxID string         `json:"target_anonimax_id"`
	Profile          *ProfilePublic `json:"profile,omitempty"`
	CreatedAt        string         `json:"created_at"`
}
