package handler

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/email"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/repository"
	"github.com/anonimax/anonimax-server/internal/service"
	"github.com/anonimax/anonimax-server/internal/testutil"
)

func setupPaymentHandler(t *testing.T) (*PaymentHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := handlerTestConfig()

	authService := service.NewAuthService(
		repository.NewUserRepository(db), email.NewService(&cfg.Email), cfg)
	paymentService := service.NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewSubscriptionRepository(db),
		repository.NewListingRepository(db),
		nil, cfg)
	handler := NewPaymentHandler(paymentService, authService)

	return handler, db, func() { testutil.CleanupTestDB(t, db) }
}

func TestPaymentHandler_Submit_Plan(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/payments", handler.Submit)

	req := dto.SubmitPaymentRequest{
		PlanType: model.PlanSingle,
		Amount:   10,
		Currency: "BRZ",
		Network:  "Polygon",
		TxHash:   "0xabc123",
	}

	w := performRequest(router, "POST", "/payments", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
}

func TestPaymentHandler_Submit_MissingTxHash(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/payments", handler.Submit)

	// Sem tx_hash o binding recusa antes do serviço.
	w := performRequest(router, "POST", "/payments", map[string]interface{}{
		"plan_type": "single",
		"amount":    10,
		"currency":  "BRZ",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestPaymentHandler_Submit_BothTargets(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	listing := testutil.TestListing(t, db, user)

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/payments", handler.Submit)

	req := dto.SubmitPaymentRequest{
		PlanType:  model.PlanMonthly,
		ListingID: &listing.ID,
		Amount:    60,
		Currency:  "BRZ",
		TxHash:    "0xabc",
	}

	w := performRequest(router, "POST", "/payments", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestPaymentHandler_Address(t *testing.T) {
	handler, _, cleanup := setupPaymentHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/payments/address", handler.Address)

	w := performRequest(router, "GET", "/payments/address?plan=monthly", nil)
	resp := parseResponse(t, w)

	require.Equal(t, response.CodeSuccess, resp.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var info dto.PaymentAddressInfo
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "Polygon", info.Network)
	assert.Equal(t, 60.0, info.Amount)
}

func TestPaymentHandler_Plans(t *testing.T) {
	handler, _, cleanup := setupPaymentHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/plans", handler.Plans)

	w := performRequest(router, "GET", "/plans", nil)
	resp := parseResponse(t, w)

	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Contains(t, w.Body.String(), "Plano Mensal")
}
