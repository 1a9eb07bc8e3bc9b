package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/privacy"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var (
	ErrListingNotFound = errors.New("anúncio não encontrado")
	// ErrPostingConflict escrita concorrente no consumo do direito de
	// postagem; o cliente deve tentar de novo.
	ErrPostingConflict = errors.New("outra publicação sua foi processada ao mesmo tempo, tente novamente")
)

// EntitlementDeniedError negação de postagem com a mensagem da avaliação.
// Resultado normal do fluxo, não uma falha.
type EntitlementDeniedError struct {
	Message string
}

func (e *EntitlementDeniedError) Error() string {
	return e.Message
}

// PersonalInfoError o texto do anúncio contém dados pessoais detectados.
type PersonalInfoError struct {
	Issues []string
}

func (e *PersonalInfoError) Error() string {
	return "Dados pessoais detectados no anúncio: " + strings.Join(e.Issues, ", ")
}

type ListingService struct {
	listingRepo *repository.ListingRepository
	subRepo     *repository.SubscriptionRepository
	entitlement *EntitlementService
}

func NewListingService(
	listingRepo *repository.ListingRepository,
	subRepo *repository.SubscriptionRepository,
	entitlement *EntitlementService,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		subRepo:     subRepo,
		entitlement: entitlement,
	}
}

// Create publica um anúncio: varredura de dados pessoais, avaliação do
// direito de postagem, criação (pendente de moderação e de pagamento) e
// consumo do direito com checagem otimista. Conflito de versão significa
// outra publicação concorrente do mesmo usuário; o chamador reavalia.
func (s *ListingService) Create(user *model.User, req *dto.CreateListingRequest) (*dto.CreateListingResponse, error) {
	// A varredura roda no servidor mesmo que o cliente já tenha avisado:
	// heurística, falso positivo aceitável.
	scan := privacy.Scan(req.Title + "\n" + req.Description)
	if scan.HasPersonalInfo {
		return nil, &PersonalInfoError{Issues: scan.Issues}
	}

	today := time.Now().Format("2006-01-02")

	sub, err := s.subRepo.GetActiveByUser(user.ID)
	if err != nil {
		return nil, err
	}

	ent := s.entitlement.Evaluate(sub, today)
	if !ent.CanPost {
		return nil, &EntitlementDeniedError{Message: ent.Message}
	}

	listing := &model.Listing{
		UserID:        user.ID,
		AnonimaxID:    user.AnonimaxID,
		ProfileID:     req.ProfileID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		City:          req.City,
		Price:         req.Price,
		Currency:      req.Currency,
		Tags:          req.Tags,
		Status:        model.ListingPending,
		PaymentStatus: model.ListingPaymentPending,
	}
	if listing.Currency == "" {
		listing.Currency = "BRZ"
	}
	if err := s.listingRepo.Create(listing); err != nil {
		return nil, err
	}

	s.entitlement.Consume(sub, today)
	if err := s.subRepo.UpdateConsume(sub); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			// O anúncio fica pendente e sem pagamento; nada a desfazer
			// às escondidas. O cliente repete a operação.
			return nil, ErrPostingConflict
		}
		return nil, err
	}

	remaining := s.entitlement.Evaluate(sub, today)

	return &dto.CreateListingResponse{
		ListingID:   listing.ID,
		Status:      listing.Status,
		Entitlement: remaining.Message,
	}, nil
}

// GetPublic retorna o anúncio para visitantes: só anúncios ao vivo.
func (s *ListingService) GetPublic(id int64) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !listing.Live() {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// GetOwned retorna o anúncio para o dono, em qualquer estado.
func (s *ListingService) GetOwned(id, userID int64) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) ListMine(userID int64) ([]model.Listing, error) {
	return s.listingRepo.ListByUser(userID)
}

// Browse busca pública; apenas anúncios aprovados e com taxa verificada.
func (s *ListingService) Browse(q *dto.ListingQuery) ([]model.Listing, int64, error) {
	return s.listingRepo.ListLive(repository.LiveFilter{
		Category: q.Category,
		City:     q.City,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
}

// Update edição pelo dono. Texto alterado passa de novo pela varredura e
// volta para a fila de moderação.
func (s *ListingService) Update(id, userID int64, req *dto.UpdateListingRequest) (*model.Listing, error) {
	listing, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}

	textChanged := false
	if req.Title != nil {
		listing.Title = *req.Title
		textChanged = true
	}
	if req.Description != nil {
		listing.Description = *req.Description
		textChanged = true
	}
	if req.Category != nil {
		listing.Category = *req.Category
	}
	if req.City != nil {
		listing.City = *req.City
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Currency != nil {
		listing.Currency = *req.Currency
	}
	if req.Tags != nil {
		listing.Tags = *req.Tags
	}

	if textChanged {
		scan := privacy.Scan(listing.Title + "\n" + listing.Description)
		if scan.HasPersonalInfo {
			return nil, &PersonalInfoError{Issues: scan.Issues}
		}
		listing.Status = model.ListingPending
	}

	if err := s.listingRepo.Update(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Delete(id, userID int64) error {
	err := s.listingRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrListingNotFound
	}
	return err
}

// Entitlement expõe a avaliação corrente para o painel do usuário.
func (s *ListingService) Entitlement(userID int64) (*dto.SubscriptionInfo, error) {
	today := time.Now().Format("2006-01-02")

	sub, err := s.subRepo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	ent := s.entitlement.Evaluate(sub, today)
	info := &dto.SubscriptionInfo{
		PlanType:    model.PlanFree,
		Entitlement: &dto.EntitlementInfo{CanPost: ent.CanPost, Message: ent.Message},
	}
	if sub != nil {
		info.ID = sub.ID
		info.PlanType = sub.PlanType
		info.Status = sub.Status
		info.SingleCredits = sub.SingleCredits
		info.LastPostDate = sub.LastPostDate
		if sub.MonthlyExpiresAt != nil {
			info.MonthlyExpiresAt = *sub.MonthlyExpiresAt
		}
		// Contador de outro dia é apresentado como zero.
		if sub.LastPostDate == today {
			info.MonthlyPostsToday = sub.MonthlyPostsToday
		}
	}
	return info, nil
}
