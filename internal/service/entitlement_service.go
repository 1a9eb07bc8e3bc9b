package service

import (
	"fmt"

	"github.com/anonimax/anonimax-server/internal/model"
	"github.com/anonimax/anonimax-server/internal/model/dto"
)

// MaxDailyPosts limite diário do plano mensal.
const MaxDailyPosts = 3

// EntitlementService decide se um usuário pode publicar um anúncio agora.
// Evaluate é pura: recebe a assinatura e a data corrente, não toca banco.
type EntitlementService struct{}

func NewEntitlementService() *EntitlementService {
	return &EntitlementService{}
}

// Evaluate avalia o direito de postagem. Datas são strings YYYY-MM-DD; a
// comparação lexicográfica equivale à cronológica nesse formato. Nunca
// entra em pânico: assinatura nil ou plano desconhecido negam com mensagem.
func (s *EntitlementService) Evaluate(sub *model.Subscription, today string) dto.EntitlementInfo {
	if sub == nil || sub.PlanType == model.PlanFree {
		return dto.EntitlementInfo{
			CanPost: false,
			Message: "Você não tem um plano ativo. Escolha um plano para publicar anúncios.",
		}
	}

	switch sub.PlanType {
	case model.PlanSingle:
		if sub.SingleCredits > 0 {
			return dto.EntitlementInfo{
				CanPost: true,
				Message: fmt.Sprintf("Você tem %d crédito(s) de anúncio disponível(is).", sub.SingleCredits),
			}
		}
		return dto.EntitlementInfo{
			CanPost: false,
			Message: "Seus créditos de anúncio acabaram. Compre um novo crédito para publicar.",
		}

	case model.PlanMonthly:
		if sub.MonthlyExpiresAt != nil && *sub.MonthlyExpiresAt < today {
			return dto.EntitlementInfo{
				CanPost: false,
				Message: "Sua assinatura mensal expirou. Renove para continuar publicando.",
			}
		}
		// Contador de outro dia vale zero; o reset é preguiçoso, no consumo.
		effective := 0
		if sub.LastPostDate == today {
			effective = sub.MonthlyPostsToday
		}
		if effective < MaxDailyPosts {
			remaining := MaxDailyPosts - effective
			return dto.EntitlementInfo{
				CanPost: true,
				Message: fmt.Sprintf("Você ainda pode publicar %d anúncio(s) hoje.", remaining),
			}
		}
		return dto.EntitlementInfo{
			CanPost: false,
			Message: fmt.Sprintf("Limite diário de %d anúncios atingido. Volte amanhã.", MaxDailyPosts),
		}
	}

	return dto.EntitlementInfo{
		CanPost: false,
		Message: "Você não tem um plano ativo. Escolha um plano para publicar anúncios.",
	}
}

// Consume registra uma postagem na assinatura, em memória. A persistência
// com checagem de versão fica no repositório; chame Evaluate antes.
func (s *EntitlementService) Consume(sub *model.Subscription, today string) {
	if sub == nil {
		return
	}

	switch sub.PlanType {
	case model.PlanSingle:
		if sub.SingleCredits > 0 {
			sub.SingleCredits--
		}
	case model.PlanMonthly:
		if sub.LastPostDate != today {
			sub.MonthlyPostsToday = 0
		}
		sub.MonthlyPostsToday++
		sub.LastPostDate = today
	}
}
