package cron

import (
	"log"
	"time"

	"github.com/anonimax/anonimax-server/internal/repository"
)

// Service varredura noturna: expira assinaturas mensais vencidas e
// desativa anúncios cujo prazo terminou.
type Service struct {
	subRepo     *repository.SubscriptionRepository
	listingRepo *repository.ListingRepository
	stopChan    chan struct{}
}

func NewService(
	subRepo *repository.SubscriptionRepository,
	listingRepo *repository.ListingRepository,
) *Service {
	return &Service{
		subRepo:     subRepo,
		listingRepo: listingRepo,
		stopChan:    make(chan struct{}),
	}
}

// Start inicia a varredura diária
func (s *Service) Start() {
	go s.runNightlySweep()
	log.Println("Cron service started (subscription expiry + listing expiry)")
}

// Stop encerra a varredura
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

func (s *Service) runNightlySweep() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.RunNow()
			timer.Reset(24 * time.Hour)
		}
	}
}

// RunNow executa a varredura imediatamente. Usada pelo binário avulso e
// pelos testes; a expiração também é checada na leitura, então atraso
// aqui não abre brecha de postagem.
func (s *Service) RunNow() {
	today := time.Now().Format("2006-01-02")

	subs, err := s.subRepo.ExpireMonthlyBefore(today)
	if err != nil {
		log.Printf("Sweep: failed to expire subscriptions: %v", err)
	}

	listings, err := s.listingRepo.DeactivateExpired(time.Now())
	if err != nil {
		log.Printf("Sweep: failed to deactivate listings: %v", err)
	}

	if subs > 0 || listings > 0 {
		log.Printf("Sweep summary: subscriptions expired=%d, listings deactivated=%d", subs, listings)
	}
}
