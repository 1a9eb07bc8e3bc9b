package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anonimax/anonimax-server/internal/model"
)

func TestEntitlementService_Evaluate(t *testing.T) {
	svc := NewEntitlementService()
	today := "2025-01-10"

	t.Run("nil subscription denies", func(t *testing.T) {
		result := svc.Evaluate(nil, today)
		assert.False(t, result.CanPost)
		assert.Contains(t, result.Message, "plano ativo")
	})

	t.Run("free plan denies", func(t *testing.T) {
		sub := &model.Subscription{PlanType: model.PlanFree}
		result := svc.Evaluate(sub, today)
		assert.False(t, result.CanPost)
	})

	t.Run("unknown plan denies without panic", func(t *testing.T) {
		sub := &model.Subscription{PlanType: "enterprise"}
		result := svc.Evaluate(sub, today)
		assert.False(t, result.CanPost)
	})

	t.Run("single with credit allows", func(t *testing.T) {
		sub := &model.Subscription{PlanType: model.PlanSingle, SingleCredits: 1}
		result := svc.Evaluate(sub, today)
		assert.True(t, result.CanPost)
		assert.Contains(t, result.Message, "1 crédito")
	})

	t.Run("single without credit denies", func(t *testing.T) {
		sub := &model.Subscription{PlanType: model.PlanSingle, SingleCredits: 0}
		result := svc.Evaluate(sub, today)
		assert.False(t, result.CanPost)
		assert.Contains(t, result.Message, "acabaram")
	})

	t.Run("monthly under daily limit allows", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:          model.PlanMonthly,
			MonthlyExpiresAt:  &expires,
			MonthlyPostsToday: 2,
			LastPostDate:      today,
		}
		result := svc.Evaluate(sub, today)
		assert.True(t, result.CanPost)
		assert.Contains(t, result.Message, "1 anúncio")
	})

	t.Run("monthly at daily limit denies", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:          model.PlanMonthly,
			MonthlyExpiresAt:  &expires,
			MonthlyPostsToday: 3,
			LastPostDate:      today,
		}
		result := svc.Evaluate(sub, today)
		assert.False(t, result.CanPost)
		assert.Contains(t, result.Message, "Volte amanhã")
	})

	t.Run("stale counter from another day counts as zero", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:          model.PlanMonthly,
			MonthlyExpiresAt:  &expires,
			MonthlyPostsToday: 3,
			LastPostDate:      "2025-01-09",
		}
		result := svc.Evaluate(sub, "2025-01-10")
		assert.True(t, result.CanPost)
		assert.Contains(t, result.Message, "3 anúncio")
	})

	t.Run("expired monthly denies before counting", func(t *testing.T) {
		expires := "2025-01-09"
		sub := &model.Subscription{
			PlanType:          model.PlanMonthly,
			MonthlyExpiresAt:  &expires,
			MonthlyPostsToday: 0,
		}
		result := svc.Evaluate(sub, "2025-01-10")
		assert.False(t, result.CanPost)
		assert.Contains(t, result.Message, "expirou")
	})

	t.Run("monthly expiring today still allows", func(t *testing.T) {
		expires := "2025-01-10"
		sub := &model.Subscription{
			PlanType:         model.PlanMonthly,
			MonthlyExpiresAt: &expires,
		}
		result := svc.Evaluate(sub, "2025-01-10")
		assert.True(t, result.CanPost)
	})
}

func TestEntitlementService_Consume(t *testing.T) {
	svc := NewEntitlementService()
	today := "2025-01-10"

	t.Run("single decrements credit", func(t *testing.T) {
		sub := &model.Subscription{PlanType: model.PlanSingle, SingleCredits: 1}
		svc.Consume(sub, today)
		assert.Equal(t, 0, sub.SingleCredits)

		// Nunca negativo.
		svc.Consume(sub, today)
		assert.Equal(t, 0, sub.SingleCredits)
	})

	t.Run("monthly increments and stamps today", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:         model.PlanMonthly,
			MonthlyExpiresAt: &expires,
		}
		svc.Consume(sub, today)
		assert.Equal(t, 1, sub.MonthlyPostsToday)
		assert.Equal(t, today, sub.LastPostDate)
	})

	t.Run("monthly resets stale counter before incrementing", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:          model.PlanMonthly,
			MonthlyExpiresAt:  &expires,
			MonthlyPostsToday: 3,
			LastPostDate:      "2025-01-09",
		}
		svc.Consume(sub, "2025-01-10")
		assert.Equal(t, 1, sub.MonthlyPostsToday)
		assert.Equal(t, "2025-01-10", sub.LastPostDate)
	})

	t.Run("three consumes exhaust the day", func(t *testing.T) {
		expires := "2025-02-10"
		sub := &model.Subscription{
			PlanType:         model.PlanMonthly,
			MonthlyExpiresAt: &expires,
		}
		for i := 0; i < MaxDailyPosts; i++ {
			result := svc.Evaluate(sub, today)
			assert.True(t, result.CanPost)
			svc.Consume(sub, today)
		}

		result := svc.Evaluate(sub, today)
		assert.False(t, result.CanPost)

		// No dia seguinte o contador do dia anterior não vale nada.
		result = svc.Evaluate(sub, "2025-01-11")
		assert.True(t, result.CanPost)
	})
}
