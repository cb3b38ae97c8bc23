package highlevelclient

import (
	"context"
	"fmt"
	"net/url"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
)

type conversationSearchResponse struct {
	Conversations []hldomain.Conversation `json:"conversations"`
}

// SearchConversations returns the location's conversations sorted by
// last message date descending, bounded by limit.
func (c *HighLevelClient) SearchConversations(ctx context.Context, locationID string, limit int) ([]hldomain.Conversation, error) {
	query := url.Values{}
	query.Set("locationId", locationID)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("sortBy", "last_message_date")
	query.Set("sort", "desc")

	response := &conversationSearchResponse{}
	if err := c.get(ctx, "/conversations/search?"+query.Encode(), response); err != nil {
		return nil, err
	}

	return response.Conversations, nil
}
