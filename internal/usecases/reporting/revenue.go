package reporting

import (
	"math"
	"time"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/pkg/utils"
)

// firstLineItemAmount is the revenue policy for one subscription: the
// minor-unit amount of its first line item, or zero when it has none.
// Multi-item subscriptions are summarized by their first item only;
// changing that policy changes this one function.
func firstLineItemAmount(sub stripedomain.Subscription) int64 {
	if len(sub.Items.Data) == 0 {
		return 0
	}
	return sub.Items.Data[0].Price.UnitAmount
}

// ComputeRevenueMetrics derives the dashboard revenue numbers from
// the three subscription sets. Pure: no I/O, no side effects; the
// caller supplies its clock so calendar-month boundaries are local.
func ComputeRevenueMetrics(active, canceled, trialing []stripedomain.Subscription, now time.Time) *domain.RevenueMetrics {
	var mrr float64
	for _, sub := range active {
		mrr += float64(firstLineItemAmount(sub)) / 100
	}

	churnRate := 0.0
	if len(active)+len(canceled) > 0 {
		churnRate = float64(len(canceled)) / float64(len(active)+len(canceled)) * 100
	}

	monthStart := utils.MonthStart(now).Unix()
	newThisMonth := 0
	for _, sub := range active {
		if sub.Created > monthStart {
			newThisMonth++
		}
	}

	return &domain.RevenueMetrics{
		ActiveCount:  len(active),
		MRR:          int(math.Round(mrr)),
		ARR:          int(math.Round(mrr * 12)),
		Trialing:     len(trialing),
		Canceled30d:  len(canceled),
		ChurnRate:    utils.RoundWithTwoDecimalPlace(churnRate),
		NewThisMonth: newThisMonth,
	}
}
