package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/api/middleware"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/service"
)

type ListingHandler struct {
	listingService *service.ListingService
	authService    *service.AuthService
}

func NewListingHandler(listingService *service.ListingService, authService *service.AuthService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		authService:    authService,
	}
}

// Create publica um anúncio
// POST /api/v1/listings
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	user, err := h.authService.User(userID)
	if err != nil {
		response.AuthError(c, "")
		return
	}

	resp, err := h.listingService.Create(user, &req)
	if err != nil {
		var denied *service.EntitlementDeniedError
		var piErr *service.PersonalInfoError
		switch {
		case errors.As(err, &denied):
			// Negação é resultado normal: o cliente mostra a mensagem.
			response.EntitlementError(c, denied.Message)
		case errors.As(err, &piErr):
			response.ParamError(c, piErr.Error())
		case errors.Is(err, service.ErrPostingConflict):
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Anúncio enviado para moderação", resp)
}

// Browse busca pública (apenas anúncios ao vivo)
// GET /api/v1/listings
func (h *ListingHandler) Browse(c *gin.Context) {
	var q dto.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	items, total, err := h.listingService.Browse(&q)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, total, q.Page, q.PageSize, items)
}

// Get detalhe público de um anúncio
// GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de anúncio inválido")
		return
	}

	listing, err := h.listingService.GetPublic(id)
	if err != nil {
		switch err {
		case service.ErrListingNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, listing)
}

// ListMine anúncios do próprio usuário, em qualquer estado
// GET /api/v1/listings/mine
func (h *ListingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	listings, err := h.listingService.ListMine(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, listings)
}

// Update edição pelo dono
// PUT /api/v1/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de anúncio inválido")
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	listing, err := h.listingService.Update(id, userID, &req)
	if err != nil {
		var piErr *service.PersonalInfoError
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			response.NotFoundError(c, err.Error())
		case errors.As(err, &piErr):
			response.ParamError(c, piErr.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, listing)
}

// Delete remoção pelo dono
// DELETE /api/v1/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de anúncio inválido")
		return
	}

	if err := h.listingService.Delete(id, userID); err != nil {
		switch err {
		case service.ErrListingNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Anúncio removido", nil)
}

// Entitlement avaliação corrente do direito de postagem
// GET /api/v1/subscription
func (h *ListingHandler) Entitlement(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	info, err := h.listingService.Entitlement(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, info)
}
