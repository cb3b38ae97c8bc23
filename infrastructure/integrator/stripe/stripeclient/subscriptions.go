package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

type subscriptionPage struct {
	Data    []stripedomain.Subscription `json:"data"`
	HasMore bool                        `json:"has_more"`
}

// ListSubscriptions walks the cursor-paginated subscription list for
// one status to exhaustion, or until stop reports that no further page
// can be relevant. Page N is always requested with the cursor returned
// by page N-1; there are no retries here.
func (c *StripeClient) ListSubscriptions(ctx context.Context, status string, stop StopFunc) ([]stripedomain.Subscription, error) {
	subscriptions := make([]stripedomain.Subscription, 0)

	startingAfter := ""
	for {
		page, err := c.fetchSubscriptionPage(ctx, status, startingAfter)
		if err != nil {
			return nil, err
		}

		subscriptions = append(subscriptions, page.Data...)

		if len(page.Data) == 0 {
			break
		}

		if stop != nil && stop(page.Data) {
			logrus.WithFields(logrus.Fields{
				"status":  status,
				"fetched": len(subscriptions),
			}).Debug("stripe: stopping subscription walk early")
			break
		}

		if !page.HasMore {
			break
		}

		startingAfter = page.Data[len(page.Data)-1].ID
	}

	return subscriptions, nil
}

func (c *StripeClient) fetchSubscriptionPage(ctx context.Context, status, startingAfter string) (*subscriptionPage, error) {
	endpoint, err := url.Parse(c.baseURL + "/subscriptions")
	if err != nil {
		return nil, fmt.Errorf("stripe: parsing base URL: %w", err)
	}

	query := endpoint.Query()
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("status", status)
	if startingAfter != "" {
		query.Set("starting_after", startingAfter)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("stripe: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Service: "stripe", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{Service: "stripe", Status: resp.StatusCode, Message: resp.Status}
	}

	page := &subscriptionPage{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, &domain.UpstreamError{Service: "stripe", Message: "decoding response: " + err.Error()}
	}

	return page, nil
}
