package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
	"github.com/anonimax/anonimax-server/internal/pkg/events"
	"github.com/anonimax/anonimax-server/internal/repository"
)

var (
	ErrPaymentTarget       = errors.New("informe o plano ou o anúncio do pagamento, não ambos")
	ErrUnknownPlan         = errors.New("plano desconhecido")
	ErrUnsupportedCurrency = errors.New("moeda não aceita")
	// ErrPaymentFinalized decisão repetida sobre pagamento já decidido;
	// verified e rejected são terminais.
	ErrPaymentFinalized = errors.New("este pagamento já foi decidido")
	ErrPaymentNotFound  = errors.New("pagamento não encontrado")
)

type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	subRepo     *repository.SubscriptionRepository
	listingRepo *repository.ListingRepository
	publisher   *events.Publisher
	cfg         *config.Config
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	subRepo *repository.SubscriptionRepository,
	listingRepo *repository.ListingRepository,
	publisher *events.Publisher,
	cfg *config.Config,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
		cfg:         cfg,
	}
}

// Submit registra o comprovante enviado pelo usuário. O pagamento nasce
// pendente e não muda assinatura nenhuma: o plano só é ativado quando um
// operador verifica o hash. Exatamente um alvo: plano ou taxa de anúncio.
func (s *PaymentService) Submit(user *model.User, req *dto.SubmitPaymentRequest) (*model.Payment, error) {
	hasPlan := req.PlanType != ""
	hasListing := req.ListingID != nil
	if hasPlan == hasListing {
		return nil, ErrPaymentTarget
	}

	if hasPlan && s.cfg.Plan(req.PlanType) == nil {
		return nil, ErrUnknownPlan
	}

	currency := strings.ToUpper(req.Currency)
	supported := false
	for _, c := range model.SupportedCurrencies {
		if c == currency {
			supported = true
			break
		}
	}
	if !supported {
		return nil, ErrUnsupportedCurrency
	}

	if hasListing {
		// A taxa só se aplica a anúncios do próprio usuário.
		if _, err := s.listingRepo.GetByIDForUser(*req.ListingID, user.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrListingNotFound
			}
			return nil, err
		}
	}

	payment := &model.Payment{
		UserID:     user.ID,
		AnonimaxID: user.AnonimaxID,
		PlanType:   req.PlanType,
		ListingID:  req.ListingID,
		Amount:     req.Amount,
		Currency:   currency,
		Network:    req.Network,
		TxHash:     req.TxHash,
		Status:     model.PaymentPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	if hasListing {
		// Hash informado: o anúncio fica marcado como pago, aguardando o
		// operador. Continua invisível ao público até a verificação.
		if err := s.listingRepo.MarkFeePaid(*req.ListingID); err != nil {
			return nil, err
		}
	}

	return payment, nil
}

// Verify aplica a decisão do operador. A verificação de um pagamento de
// plano emite uma assinatura nova, substituindo a anterior; a de taxa de
// anúncio marca payment_status=verified sem tocar na moderação de
// conteúdo. Pagamento já decidido nunca muda de novo.
func (s *PaymentService) Verify(ctx context.Context, paymentID int64, approve bool) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	status := model.PaymentRejected
	var verifiedAt *time.Time
	if approve {
		status = model.PaymentVerified
		now := time.Now()
		verifiedAt = &now
	}

	if err := s.paymentRepo.Finalize(payment.ID, status, verifiedAt); err != nil {
		if errors.Is(err, repository.ErrAlreadyFinalized) {
			return nil, ErrPaymentFinalized
		}
		return nil, err
	}
	payment.Status = status
	payment.VerifiedAt = verifiedAt

	if approve {
		if err := s.applyVerified(ctx, payment); err != nil {
			return nil, err
		}
	} else if payment.ListingID != nil {
		if err := s.listingRepo.SetPaymentStatus(*payment.ListingID, model.ListingPaymentRejected); err != nil {
			return nil, err
		}
	}
	// Plano rejeitado: a assinatura simplesmente nunca é emitida.

	s.notify(ctx, payment)
	return payment, nil
}

func (s *PaymentService) applyVerified(ctx context.Context, payment *model.Payment) error {
	if payment.ListingID != nil {
		return s.listingRepo.SetPaymentStatus(*payment.ListingID, model.ListingPaymentVerified)
	}

	// Assinaturas antigas são substituídas, nunca apagadas: o histórico
	// de consumo permanece auditável.
	if err := s.subRepo.SupersedeActive(payment.UserID); err != nil {
		return err
	}

	sub := &model.Subscription{
		UserID:   payment.UserID,
		PlanType: payment.PlanType,
		Status:   model.SubscriptionActive,
	}
	switch payment.PlanType {
	case model.PlanSingle:
		sub.SingleCredits = 1
	case model.PlanMonthly:
		expires := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
		sub.MonthlyExpiresAt = &expires
	}
	if err := s.subRepo.Create(sub); err != nil {
		return err
	}

	if s.publisher != nil {
		evt := &events.Event{
			Type:   events.TypeSubscriptionActivated,
			UserID: payment.UserID,
			Status: model.SubscriptionActive,
		}
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Printf("payment: failed to publish subscription event: %v", err)
		}
	}
	return nil
}

func (s *PaymentService) notify(ctx context.Context, payment *model.Payment) {
	if s.publisher == nil {
		return
	}

	evt := &events.Event{
		UserID:    payment.UserID,
		PaymentID: payment.ID,
		Status:    payment.Status,
	}
	if payment.Status == model.PaymentVerified {
		evt.Type = events.TypePaymentVerified
	} else {
		evt.Type = events.TypePaymentRejected
	}
	if payment.ListingID != nil {
		evt.ListingID = *payment.ListingID
	}

	if err := s.publisher.Publish(ctx, evt); err != nil {
		log.Printf("payment: failed to publish payment event: %v", err)
	}
}

// ListMine pagamentos do próprio usuário.
func (s *PaymentService) ListMine(userID int64) ([]model.Payment, error) {
	return s.paymentRepo.ListByUser(userID)
}

// AddressInfo endereço de recebimento para o checkout.
func (s *PaymentService) AddressInfo(planType string) (*dto.PaymentAddressInfo, error) {
	info := &dto.PaymentAddressInfo{
		Currency: s.cfg.Payment.Currency,
		Network:  s.cfg.Payment.Network,
		Address:  s.cfg.Payment.Address,
		Rate:     s.cfg.Payment.Rate,
	}
	if planType != "" {
		plan := s.cfg.Plan(planType)
		if plan == nil {
			return nil, ErrUnknownPlan
		}
		info.Amount = plan.Price
	}
	return info, nil
}

// Plans catálogo de planos do checkout.
func (s *PaymentService) Plans() []dto.PlanInfo {
	plans := make([]dto.PlanInfo, 0, len(s.cfg.Plans))
	for _, p := range s.cfg.Plans {
		plans = append(plans, dto.PlanInfo{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Currency:    p.Currency,
			Description: p.Description,
			Features:    p.Features,
			Popular:     p.Popular,
		})
	}
	return plans
}
