package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
)

func subscriptionWithItems(id string, created int64, unitAmounts ...int64) stripedomain.Subscription {
	sub := stripedomain.Subscription{
		ID:      id,
		Status:  stripedomain.StatusActive,
		Created: created,
	}
	for _, amount := range unitAmounts {
		sub.Items.Data = append(sub.Items.Data, stripedomain.SubscriptionItem{
			Price: stripedomain.Price{UnitAmount: amount},
		})
	}
	return sub
}

func TestComputeRevenueMetrics_ChurnRateZeroWhenNoSubscriptions(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	metrics := ComputeRevenueMetrics(nil, nil, nil, now)

	assert.Equal(t, 0.0, metrics.ChurnRate)
	assert.Equal(t, 0, metrics.ActiveCount)
	assert.Equal(t, 0, metrics.MRR)
	assert.Equal(t, 0, metrics.ARR)
}

func TestComputeRevenueMetrics_FirstLineItemOnly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// One subscription carrying two line items must contribute only
	// its first item's amount.
	active := []stripedomain.Subscription{
		subscriptionWithItems("sub_1", 0, 5000, 10000),
	}

	metrics := ComputeRevenueMetrics(active, nil, nil, now)

	assert.Equal(t, 50, metrics.MRR)
	assert.Equal(t, 600, metrics.ARR)
}

func TestComputeRevenueMetrics_EmptyLineItemsContributeZero(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	active := []stripedomain.Subscription{
		subscriptionWithItems("sub_1", 0),
		subscriptionWithItems("sub_2", 0, 2500),
	}

	metrics := ComputeRevenueMetrics(active, nil, nil, now)

	assert.Equal(t, 2, metrics.ActiveCount)
	assert.Equal(t, 25, metrics.MRR)
}

func TestComputeRevenueMetrics_ChurnRate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	active := []stripedomain.Subscription{
		subscriptionWithItems("sub_1", 0, 1000),
		subscriptionWithItems("sub_2", 0, 1000),
		subscriptionWithItems("sub_3", 0, 1000),
	}
	canceled := []stripedomain.Subscription{
		{ID: "sub_4", Status: stripedomain.StatusCanceled},
	}

	metrics := ComputeRevenueMetrics(active, canceled, nil, now)

	// 1 canceled out of 4 total.
	assert.Equal(t, 25.0, metrics.ChurnRate)
	assert.Equal(t, 1, metrics.Canceled30d)
}

func TestComputeRevenueMetrics_NewThisMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	active := []stripedomain.Subscription{
		subscriptionWithItems("sub_old", monthStart.Add(-48*time.Hour).Unix(), 1000),
		subscriptionWithItems("sub_new", monthStart.Add(72*time.Hour).Unix(), 1000),
	}

	metrics := ComputeRevenueMetrics(active, nil, nil, now)

	assert.Equal(t, 1, metrics.NewThisMonth)
}

func TestComputeRevenueMetrics_TrialingCount(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	trialing := []stripedomain.Subscription{
		{ID: "sub_t1", Status: stripedomain.StatusTrialing},
		{ID: "sub_t2", Status: stripedomain.StatusTrialing},
	}

	metrics := ComputeRevenueMetrics(nil, nil, trialing, now)

	assert.Equal(t, 2, metrics.Trialing)
	// Trialing subscriptions never count toward MRR or churn.
	assert.Equal(t, 0, metrics.MRR)
	assert.Equal(t, 0.0, metrics.ChurnRate)
}
