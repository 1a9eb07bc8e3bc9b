package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/api/middleware"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	authService    *service.AuthService
}

func NewPaymentHandler(paymentService *service.PaymentService, authService *service.AuthService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		authService:    authService,
	}
}

// Submit envia o comprovante de pagamento
// POST /api/v1/payments
func (h *PaymentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	user, err := h.authService.User(userID)
	if err != nil {
		response.AuthError(c, "")
		return
	}

	payment, err := h.paymentService.Submit(user, &req)
	if err != nil {
		switch err {
		case service.ErrPaymentTarget, service.ErrUnknownPlan, service.ErrUnsupportedCurrency:
			response.ParamError(c, err.Error())
		case service.ErrListingNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "Pagamento registrado, aguardando verificação", payment)
}

// ListMine pagamentos do próprio usuário
// GET /api/v1/payments
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	payments, err := h.paymentService.ListMine(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, payments)
}

// Address endereço de recebimento para o checkout
// GET /api/v1/payments/address?plan=monthly
func (h *PaymentHandler) Address(c *gin.Context) {
	info, err := h.paymentService.AddressInfo(c.Query("plan"))
	if err != nil {
		switch err {
		case service.ErrUnknownPlan:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, info)
}

// Plans catálogo de planos
// GET /api/v1/plans
func (h *PaymentHandler) Plans(c *gin.Context) {
	response.Success(c, gin.H{
		"plans": h.paymentService.Plans(),
	})
}
