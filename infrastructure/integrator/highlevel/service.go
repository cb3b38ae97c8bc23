package highlevel

import (
	"context"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
	"github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/highlevelclient"
	"github.com/automateboss/ops-portal-api/internal/config"
)

// ConversationIntegrator exposes the conversation data the risk
// classifier consumes.
type ConversationIntegrator interface {
	RecentConversations(ctx context.Context) ([]hldomain.Conversation, error)
	ConversationMessages(ctx context.Context, conversationID string) ([]hldomain.Message, error)
}

type Integrator struct {
	cfg    *config.Config
	client highlevelclient.Client
}

func New(cfg *config.Config, client highlevelclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// RecentConversations returns the main location's conversations,
// newest last-message first.
func (i *Integrator) RecentConversations(ctx context.Context) ([]hldomain.Conversation, error) {
	limit := i.cfg.HighLevel.ConversationLimit
	if limit <= 0 {
		limit = 50
	}

	return i.client.SearchConversations(ctx, i.cfg.HighLevel.MainLocationID, limit)
}

// ConversationMessages returns the bounded recent history of one
// conversation, newest first.
func (i *Integrator) ConversationMessages(ctx context.Context, conversationID string) ([]hldomain.Message, error) {
	limit := i.cfg.HighLevel.MessageHistoryLimit
	if limit <= 0 {
		limit = 20
	}

	return i.client.ListMessages(ctx, conversationID, limit)
}
