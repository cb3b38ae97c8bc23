package stripeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

func testClient(t *testing.T, serverURL string, pageSize int) Client {
	t.Helper()

	cfg := &config.Config{
		Stripe: config.Stripe{
			BaseURL:   serverURL,
			SecretKey: "sk_test_123",
			PageSize:  pageSize,
		},
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresSecretKey(t *testing.T) {
	cfg := &config.Config{Stripe: config.Stripe{BaseURL: "https://api.stripe.com/v1"}}

	_, err := NewClient(cfg)

	// Missing credentials must fail at construction, not on first use.
	require.Error(t, err)
}

func TestListSubscriptions_WalksAllPages(t *testing.T) {
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))

		cursor := r.URL.Query().Get("starting_after")
		requests = append(requests, cursor)

		w.Header().Set("Content-Type", "application/json")
		switch cursor {
		case "":
			fmt.Fprint(w, `{"data":[{"id":"sub_1"},{"id":"sub_2"}],"has_more":true}`)
		case "sub_2":
			fmt.Fprint(w, `{"data":[{"id":"sub_3"}],"has_more":false}`)
		default:
			t.Fatalf("unexpected cursor %q", cursor)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL, 2)

	subscriptions, err := client.ListSubscriptions(context.Background(), stripedomain.StatusActive, nil)

	require.NoError(t, err)
	assert.Len(t, subscriptions, 3)
	// Page N is requested with the last id of page N-1.
	assert.Equal(t, []string{"", "sub_2"}, requests)
}

func TestListSubscriptions_StopFuncEndsWalkEarly(t *testing.T) {
	pagesServed := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		w.Header().Set("Content-Type", "application/json")
		// Every page claims more data; only the stop func can end this.
		fmt.Fprintf(w, `{"data":[{"id":"sub_%d","canceled_at":100}],"has_more":true}`, pagesServed)
	}))
	defer server.Close()

	client := testClient(t, server.URL, 1)

	cutoff := int64(500)
	stop := func(page []stripedomain.Subscription) bool {
		for _, sub := range page {
			if sub.CanceledAt >= cutoff {
				return false
			}
		}
		return true
	}

	_, err := client.ListSubscriptions(context.Background(), stripedomain.StatusCanceled, stop)

	require.NoError(t, err)
	// The first page is already entirely older than the cutoff, so no
	// second request may be issued.
	assert.Equal(t, 1, pagesServed)
}

func TestListSubscriptions_NonOKStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL, 10)

	_, err := client.ListSubscriptions(context.Background(), stripedomain.StatusActive, nil)

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestListSubscriptions_EmptyPageEndsWalk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[],"has_more":false}`)
	}))
	defer server.Close()

	client := testClient(t, server.URL, 10)

	subscriptions, err := client.ListSubscriptions(context.Background(), stripedomain.StatusActive, nil)

	require.NoError(t, err)
	assert.Empty(t, subscriptions)
}
