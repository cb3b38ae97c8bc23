package stripeclient

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/config"
)

// StopFunc lets a walk end early once a page proves no further page
// can matter (pages arrive most-recent-first). It is consulted after
// the page's items have been collected.
type StopFunc func(page []stripedomain.Subscription) bool

type Client interface {
	ListSubscriptions(ctx context.Context, status string, stop StopFunc) ([]stripedomain.Subscription, error)
}

type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	pageSize   int
}

// NewClient builds a Stripe API client. Missing credentials fail here,
// at construction time, rather than on first use.
func NewClient(cfg *config.Config) (Client, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe: secret key is not configured")
	}

	pageSize := cfg.Stripe.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   cfg.Stripe.BaseURL,
		secretKey: cfg.Stripe.SecretKey,
		pageSize:  pageSize,
	}, nil
}
