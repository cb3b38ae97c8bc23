package reporting

import (
	"context"
	"time"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
	stripedomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/stripe/domain"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

// SubscriptionSource provides the three paged subscription sets the
// revenue metrics are computed from. Implemented by the Stripe
// integrator.
type SubscriptionSource interface {
	ActiveSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error)
	RecentlyCanceledSubscriptions(ctx context.Context, threshold time.Time) ([]stripedomain.Subscription, error)
	TrialingSubscriptions(ctx context.Context) ([]stripedomain.Subscription, error)
}

// ConversationSource provides the unread-conversation feed and
// per-conversation histories. Implemented by the HighLevel integrator.
type ConversationSource interface {
	RecentConversations(ctx context.Context) ([]hldomain.Conversation, error)
	ConversationMessages(ctx context.Context, conversationID string) ([]hldomain.Message, error)
}

// ReportBuilder builds the unified dashboard report.
type ReportBuilder interface {
	BuildReport(ctx context.Context) (*domain.DashboardReport, error)
}
