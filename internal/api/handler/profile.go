package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/api/middleware"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/service"
)

type ProfileHandler struct {
	profileService  *service.ProfileService
	favoriteService *service.FavoriteService
	authService     *service.AuthService
}

func NewProfileHandler(
	profileService *service.ProfileService,
	favoriteService *service.FavoriteService,
	authService *service.AuthService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		favoriteService: favoriteService,
		authService:     authService,
	}
}

// Me perfil do próprio usuário
// GET /api/v1/profile
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	user, err := h.authService.User(userID)
	if err != nil {
		response.AuthError(c, "")
		return
	}

	profile, err := h.profileService.GetOrCreate(user)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, profile)
}

// Update edição do próprio perfil
// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	user, err := h.authService.User(userID)
	if err != nil {
		response.AuthError(c, "")
		return
	}

	profile, err := h.profileService.Update(user, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, profile)
}

// Browse busca pública de perfis
// GET /api/v1/profiles
func (h *ProfileHandler) Browse(c *gin.Context) {
	var q dto.ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	profiles, total, err := h.profileService.Browse(&q)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, total, q.Page, q.PageSize, profiles)
}

// Get perfil público pelo Anonimax ID
// GET /api/v1/profiles/:anonimax_id
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetPublic(c.Param("anonimax_id"))
	if err != nil {
		switch err {
		case service.ErrProfileNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, profile)
}

// AddFavorite favorita um perfil
// POST /api/v1/favorites
func (h *ProfileHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	fav, err := h.favoriteService.Add(userID, req.TargetAnonimaxID)
	if err != nil {
		switch err {
		case service.ErrInvalidAnonimaxID:
			response.ParamError(c, err.Error())
		case service.ErrFavoriteExists:
			response.DuplicateError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Perfil favoritado", fav)
}

// ListFavorites favoritos do usuário
// GET /api/v1/favorites
func (h *ProfileHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	favs, err := h.favoriteService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, favs)
}

// RemoveFavorite desfavorita um perfil
// DELETE /api/v1/favorites/:anonimax_id
func (h *ProfileHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.favoriteService.Remove(userID, c.Param("anonimax_id")); err != nil {
		switch err {
		case service.ErrFavoriteNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Favorito removido", nil)
}
