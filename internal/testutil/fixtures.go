package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser cria um usuário de teste.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	seq := nextSeq()
	user := &model.User{
		Email:        fmt.Sprintf("test_%d_%d@example.com", time.Now().UnixNano(), seq),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // hash bcrypt de exemplo
		AnonimaxID:   fmt.Sprintf("ANX-T%05d", seq%100000),
		IsVerified:   true,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail define o email
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithAdmin marca o usuário como operador
func WithAdmin() func(*model.User) {
	return func(u *model.User) {
		u.IsAdmin = true
	}
}

// WithUnverified marca o email como não verificado
func WithUnverified() func(*model.User) {
	return func(u *model.User) {
		u.IsVerified = false
	}
}

// TestSubscription cria uma assinatura de teste.
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:   userID,
		PlanType: model.PlanSingle,
		Status:   model.SubscriptionActive,
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithPlan define o tipo de plano
func WithPlan(planType string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.PlanType = planType
	}
}

// WithCredits define os créditos avulsos
func WithCredits(credits int) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.PlanType = model.PlanSingle
		s.SingleCredits = credits
	}
}

// WithMonthly configura plano mensal com contagem do dia
func WithMonthly(postsToday int, lastPostDate, expiresAt string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.PlanType = model.PlanMonthly
		s.MonthlyPostsToday = postsToday
		s.LastPostDate = lastPostDate
		if expiresAt != "" {
			s.MonthlyExpiresAt = &expiresAt
		}
	}
}

// WithSubscriptionStatus define o status da assinatura
func WithSubscriptionStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}

// TestProfile cria um perfil de teste.
func TestProfile(t *testing.T, db *gorm.DB, user *model.User, opts ...func(*model.Profile)) *model.Profile {
	t.Helper()

	profile := &model.Profile{
		UserID:     user.ID,
		AnonimaxID: user.AnonimaxID,
		Bio:        "Serviços profissionais",
		IsActive:   true,
	}

	for _, opt := range opts {
		opt(profile)
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return profile
}

// WithCity define a cidade do perfil
func WithCity(city string) func(*model.Profile) {
	return func(p *model.Profile) {
		p.City = city
	}
}

// WithBio define a bio do perfil
func WithBio(bio string) func(*model.Profile) {
	return func(p *model.Profile) {
		p.Bio = bio
	}
}

// TestListing cria um anúncio de teste.
func TestListing(t *testing.T, db *gorm.DB, user *model.User, opts ...func(*model.Listing)) *model.Listing {
	t.Helper()

	listing := &model.Listing{
		UserID:        user.ID,
		AnonimaxID:    user.AnonimaxID,
		Title:         fmt.Sprintf("Anúncio %d", nextSeq()),
		Description:   "Descrição do serviço",
		Category:      "servicos",
		City:          "São Paulo",
		Price:         100,
		Currency:      "BRZ",
		Status:        model.ListingPending,
		PaymentStatus: model.ListingPaymentPending,
	}

	for _, opt := range opts {
		opt(listing)
	}

	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("Failed to create test listing: %v", err)
	}

	return listing
}

// WithListingStatus define status de moderação e pagamento
func WithListingStatus(status, paymentStatus string) func(*model.Listing) {
	return func(l *model.Listing) {
		l.Status = status
		l.PaymentStatus = paymentStatus
	}
}

// WithTitle define o título do anúncio
func WithTitle(title string) func(*model.Listing) {
	return func(l *model.Listing) {
		l.Title = title
	}
}

// WithCategory define a categoria do anúncio
func WithCategory(category string) func(*model.Listing) {
	return func(l *model.Listing) {
		l.Category = category
	}
}

// TestPayment cria um pagamento de teste.
func TestPayment(t *testing.T, db *gorm.DB, user *model.User, opts ...func(*model.Payment)) *model.Payment {
	t.Helper()

	payment := &model.Payment{
		UserID:     user.ID,
		AnonimaxID: user.AnonimaxID,
		PlanType:   model.PlanSingle,
		Amount:     10,
		Currency:   "BRZ",
		Network:    "Polygon",
		TxHash:     fmt.Sprintf("0x%064d", nextSeq()),
		Status:     model.PaymentPending,
	}

	for _, opt := range opts {
		opt(payment)
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}

	return payment
}

// WithPaymentStatus define o status do pagamento
func WithPaymentStatus(status string) func(*model.Payment) {
	return func(p *model.Payment) {
		p.Status = status
	}
}

// WithListingFee direciona o pagamento para a taxa de um anúncio
func WithListingFee(listingID int64) func(*model.Payment) {
	return func(p *model.Payment) {
		p.PlanType = ""
		p.ListingID = &listingID
	}
}

// TestCategory cria uma categoria de teste.
func TestCategory(t *testing.T, db *gorm.DB, name, slug string) *model.Category {
	t.Helper()

	category := &model.Category{
		Name: name,
		Slug: slug,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}
