package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/service"
)

type AdminHandler struct {
	adminService   *service.AdminService
	paymentService *service.PaymentService
}

func NewAdminHandler(adminService *service.AdminService, paymentService *service.PaymentService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		paymentService: paymentService,
	}
}

// Stats números do painel
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, stats)
}

// ListUsers lista de contas
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.adminService.ListUsers(limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, users)
}

// ListListings anúncios com filtro de status
// GET /api/v1/admin/listings?status=pending
func (h *AdminHandler) ListListings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	listings, err := h.adminService.ListListings(c.Query("status"), limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, listings)
}

// ListPayments pagamentos com filtro de status
// GET /api/v1/admin/payments?status=pending
func (h *AdminHandler) ListPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	payments, err := h.adminService.ListPayments(c.Query("status"), limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, payments)
}

// VerifyPayment decide um pagamento pendente
// POST /api/v1/admin/payments/:id/verify
func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de pagamento inválido")
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	payment, err := h.paymentService.Verify(c.Request.Context(), id, req.Action == "verify")
	if err != nil {
		switch err {
		case service.ErrPaymentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrPaymentFinalized:
			response.DuplicateError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Decisão registrada", payment)
}

// ReviewListing decide a moderação de um anúncio pendente
// POST /api/v1/admin/listings/:id/review
func (h *AdminHandler) ReviewListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de anúncio inválido")
		return
	}

	var req dto.ReviewListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	listing, err := h.adminService.ReviewListing(c.Request.Context(), id, req.Action == "approve")
	if err != nil {
		switch err {
		case service.ErrListingNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrListingReviewed:
			response.DuplicateError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Decisão registrada", listing)
}

// DeleteUser remove uma conta e tudo que pertence a ela
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "ID de usuário inválido")
		return
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		switch err {
		case service.ErrUserNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Conta removida", nil)
}
