package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/api/middleware"
	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/email"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/repository"
	"github.com/anonimax/anonimax-server/internal/service"
	"github.com/anonimax/anonimax-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// mockAuth injeta o usuário autenticado no contexto
func mockAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func handlerTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "handler-test-secret", ExpireHours: 24},
		Plans: []config.PlanConfig{
			{ID: "single", Name: "Anúncio Avulso", Price: 10, Currency: "BRZ"},
			{ID: "monthly", Name: "Plano Mensal", Price: 60, Currency: "BRZ"},
		},
		Payment: config.PaymentConfig{
			Address:  "0xda9811524aec92900905e5352be766ea84ddbf24",
			Currency: "BRZ",
			Network:  "Polygon",
		},
	}
}

func setupListingHandler(t *testing.T) (*ListingHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := handlerTestConfig()

	authService := service.NewAuthService(
		repository.NewUserRepository(db), email.NewService(&cfg.Email), cfg)
	listingService := service.NewListingService(
		repository.NewListingRepository(db),
		repository.NewSubscriptionRepository(db),
		service.NewEntitlementService())
	handler := NewListingHandler(listingService, authService)

	return handler, db, func() { testutil.CleanupTestDB(t, db) }
}

func TestListingHandler_Create_Success(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, testutil.WithCredits(1))

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/listings", handler.Create)

	req := dto.CreateListingRequest{
		Title:       "Aulas de violão",
		Description: "Aulas para iniciantes.",
		Category:    "servicos",
		Price:       80,
	}

	w := performRequest(router, "POST", "/listings", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
}

func TestListingHandler_Create_EntitlementDenied(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/listings", handler.Create)

	req := dto.CreateListingRequest{
		Title:       "Aulas de violão",
		Description: "Aulas para iniciantes.",
		Category:    "servicos",
		Price:       80,
	}

	w := performRequest(router, "POST", "/listings", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeEntitlementDenied, resp.Code)
	assert.Contains(t, resp.Message, "plano")
}

func TestListingHandler_Create_PersonalInfo(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, testutil.WithCredits(1))

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/listings", handler.Create)

	req := dto.CreateListingRequest{
		Title:       "Aulas de violão",
		Description: "Me chama no zap: (11) 98765-4321",
		Category:    "servicos",
		Price:       80,
	}

	w := performRequest(router, "POST", "/listings", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
	assert.Contains(t, resp.Message, "Dados pessoais")
}

func TestListingHandler_Create_MissingFields(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.POST("/listings", handler.Create)

	w := performRequest(router, "POST", "/listings", map[string]interface{}{
		"title": "Sem descrição",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestListingHandler_Browse_OnlyLive(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentVerified))
	testutil.TestListing(t, db, user)

	router := gin.New()
	router.GET("/listings", handler.Browse)

	w := performRequest(router, "GET", "/listings", nil)
	resp := parseResponse(t, w)

	require.Equal(t, response.CodeSuccess, resp.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var page response.PageData
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, int64(1), page.Total)
}

func TestListingHandler_Get_HiddenWhenNotLive(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	listing := testutil.TestListing(t, db, user,
		testutil.WithListingStatus(model.ListingActive, model.ListingPaymentPaid))

	router := gin.New()
	router.GET("/listings/:id", handler.Get)

	w := performRequest(router, "GET", "/listings/"+itoa(listing.ID), nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestListingHandler_Entitlement(t *testing.T) {
	handler, db, cleanup := setupListingHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.ID, testutil.WithCredits(1))

	router := gin.New()
	router.Use(mockAuth(user.ID))
	router.GET("/subscription", handler.Entitlement)

	w := performRequest(router, "GET", "/subscription", nil)
	resp := parseResponse(t, w)

	require.Equal(t, response.CodeSuccess, resp.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var info dto.SubscriptionInfo
	require.NoError(t, json.Unmarshal(data, &info))
	assert.True(t, info.Entitlement.CanPost)
	assert.Equal(t, 1, info.SingleCredits)
}
