package highlevelclient

import (
	"context"
	"fmt"
	"net/url"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
)

// The messages endpoint nests the list one level deeper than the
// conversation search does.
type messageListResponse struct {
	Messages struct {
		Messages []hldomain.Message `json:"messages"`
	} `json:"messages"`
}

// ListMessages returns a conversation's most recent messages, newest
// first, bounded by limit.
func (c *HighLevelClient) ListMessages(ctx context.Context, conversationID string, limit int) ([]hldomain.Message, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", limit))

	response := &messageListResponse{}
	path := fmt.Sprintf("/conversations/%s/messages?%s", url.PathEscape(conversationID), query.Encode())
	if err := c.get(ctx, path, response); err != nil {
		return nil, err
	}

	return response.Messages.Messages, nil
}
