package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/events"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var (
	ErrUserNotFound = errors.New("usuário não encontrado")
	// ErrListingReviewed moderação repetida; a decisão de conteúdo só vale
	// enquanto o anúncio está pendente.
	ErrListingReviewed = errors.New("este anúncio já foi moderado")
)

// ListingTTLDays validade de um anúncio aprovado.
const ListingTTLDays = 30

type AdminService struct {
	userRepo    *repository.UserRepository
	listingRepo *repository.ListingRepository
	paymentRepo *repository.PaymentRepository
	publisher   *events.Publisher
}

func NewAdminService(
	userRepo *repository.UserRepository,
	listingRepo *repository.ListingRepository,
	paymentRepo *repository.PaymentRepository,
	publisher *events.Publisher,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}
}

// Stats números agregados do painel.
func (s *AdminService) Stats() (*dto.PlatformStats, error) {
	stats := &dto.PlatformStats{}

	var err error
	if stats.Users.Total, err = s.userRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.Users.Verified, err = s.userRepo.CountVerified(); err != nil {
		return nil, err
	}
	if stats.Listings.Total, err = s.listingRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.Listings.Active, err = s.listingRepo.CountByStatus(model.ListingActive); err != nil {
		return nil, err
	}
	if stats.Listings.Pending, err = s.listingRepo.CountByStatus(model.ListingPending); err != nil {
		return nil, err
	}
	if stats.Payments.Pending, err = s.paymentRepo.CountByStatus(model.PaymentPending); err != nil {
		return nil, err
	}
	if stats.Payments.Verified, err = s.paymentRepo.CountByStatus(model.PaymentVerified); err != nil {
		return nil, err
	}
	if stats.Payments.TotalRevenue, err = s.paymentRepo.SumVerified(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *AdminService) ListUsers(limit int) ([]model.User, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.userRepo.List(limit)
}

func (s *AdminService) ListListings(status string, limit int) ([]model.Listing, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.listingRepo.ListAll(status, limit)
}

func (s *AdminService) ListPayments(status string, limit int) ([]model.Payment, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.paymentRepo.ListByStatus(status, limit)
}

// ReviewListing aprova ou rejeita o conteúdo de um anúncio pendente.
// Aprovação estampa a validade; nada aqui toca o estado de pagamento.
func (s *AdminService) ReviewListing(ctx context.Context, listingID int64, approve bool) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	status := model.ListingRejected
	var expiresAt *time.Time
	if approve {
		status = model.ListingActive
		t := time.Now().AddDate(0, 0, ListingTTLDays)
		expiresAt = &t
	}

	if err := s.listingRepo.Review(listing.ID, status, expiresAt); err != nil {
		if errors.Is(err, repository.ErrNotReviewable) {
			return nil, ErrListingReviewed
		}
		return nil, err
	}
	listing.Status = status
	listing.ExpiresAt = expiresAt

	if s.publisher != nil {
		evt := &events.Event{
			UserID:    listing.UserID,
			ListingID: listing.ID,
			Status:    status,
		}
		if approve {
			evt.Type = events.TypeListingApproved
		} else {
			evt.Type = events.TypeListingRejected
		}
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Printf("admin: failed to publish listing event: %v", err)
		}
	}

	return listing, nil
}

// DeleteUser remove a conta e tudo que pertence a ela.
func (s *AdminService) DeleteUser(userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.DeleteCascade(userID)
}
