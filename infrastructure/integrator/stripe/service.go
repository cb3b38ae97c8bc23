package stripe

import (
	"context"
	"time"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/automateboss/ops-portal-api/internal/config"
)

// SubscriptionIntegrator exposes the three subscription sets the
// revenue report is built from.
type SubscriptionIntegrator interface {
	ActiveSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error)
	RecentlyCanceledSubscriptions(ctx context.Context, threshold time.Time) ([]stripedomain.Subscription, error)
	TrialingSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error)
}

type Integrator struct {
	cfg    *config.Config
	client stripeclient.Client
}

func New(cfg *config.Config, client stripeclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *Integrator) ActiveSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error) {
	return i.client.ListSubscriptions(ctx, stripedomain.StatusActive, nil)
}

// RecentlyCanceledSubscriptions returns cancellations at or after the
// threshold. The canceled list is sorted most-recent-first upstream,
// so the walk stops as soon as an entire page is older than the
// threshold instead of scanning the full cancellation history.
func (i *Integrator) RecentlyCanceledSubscriptions(ctx context.Context, threshold time.Time) ([]stripedomain.Subscription, error) {
	cutoff := threshold.Unix()

	stop := func(page []stripedomain.Subscription) bool {
		for _, sub := range page {
			if sub.CanceledAt >= cutoff {
				return false
			}
		}
		return true
	}

	subscriptions, err := i.client.ListSubscriptions(ctx, stripedomain.StatusCanceled, stop)
	if err != nil {
		return nil, err
	}

	recent := make([]stripedomain.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if sub.CanceledAt >= cutoff {
			recent = append(recent, sub)
		}
	}

	return recent, nil
}

func (i *Integrator) TrialingSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error) {
	return i.client.ListSubscriptions(ctx, stripedomain.StatusTrialing, nil)
}
