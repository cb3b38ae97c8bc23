package highlevelclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

type Client interface {
	SearchConversations(ctx context.Context, locationID string, limit int) ([]hldomain.Conversation, error)
	ListMessages(ctx context.Context, conversationID string, limit int) ([]hldomain.Message, error)
}

type HighLevelClient struct {
	httpClient    *http.Client
	baseURL       string
	locationToken string
	apiVersion    string
}

// NewClient builds a HighLevel v2 API client. Missing credentials fail
// at construction time.
func NewClient(cfg *config.Config) (Client, error) {
	if cfg.HighLevel.LocationToken == "" {
		return nil, errors.New("highlevel: location token is not configured")
	}

	return &HighLevelClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:       cfg.HighLevel.BaseURL,
		locationToken: cfg.HighLevel.LocationToken,
		apiVersion:    cfg.HighLevel.APIVersion,
	}, nil
}

// get performs an authenticated GET against the HighLevel API and
// decodes the JSON body into out. Non-2xx responses surface as
// UpstreamError; no retries.
func (c *HighLevelClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("highlevel: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.locationToken)
	req.Header.Set("Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Service: "highlevel", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return &domain.UpstreamError{Service: "highlevel", Status: resp.StatusCode, Message: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Service: "highlevel", Message: "decoding response: " + err.Error()}
	}

	return nil
}
