package reporting

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
	"github.com/automateboss/ops-portal-api/internal/domain"
)

// maxHistoryFetches bounds how many conversation histories are pulled
// concurrently during one scan.
const maxHistoryFetches = 8

// Classifier tags unread conversations with a churn-risk urgency. The
// filters run in a fixed, irreversible order: read conversations are
// dropped first, then spam and nameless contacts, and only then does
// keyword classification (and the conditional history fetch) happen.
type Classifier struct {
	source ConversationSource
	rules  RuleSet
}

func NewClassifier(source ConversationSource, rules RuleSet) *Classifier {
	return &Classifier{
		source: source,
		rules:  rules,
	}
}

// Scan fetches the recent conversations, filters them, and classifies
// the survivors concurrently. totalUnread counts every conversation
// that passed the unread/spam/name filters, whether or not it is
// emitted. Per-conversation history failures are contained and never
// abort the scan.
func (c *Classifier) Scan(ctx context.Context) (risks []*domain.ConversationRisk, totalUnread int, err error) {
	conversations, err := c.source.RecentConversations(ctx)
	if err != nil {
		return nil, 0, err
	}

	survivors := make([]hldomain.Conversation, 0, len(conversations))
	for _, conversation := range conversations {
		if conversation.UnreadCount == 0 {
			continue
		}
		if c.rules.HasMatch(conversation.LastMessageBody, CategorySpam) {
			continue
		}
		if strings.TrimSpace(conversation.DisplayName()) == "" {
			continue
		}
		survivors = append(survivors, conversation)
	}

	totalUnread = len(survivors)

	// Each survivor is classified independently; slots keep the feed
	// order without sharing state across goroutines.
	classified := make([]*domain.ConversationRisk, len(survivors))

	group := &errgroup.Group{}
	group.SetLimit(maxHistoryFetches)

	for i, conversation := range survivors {
		i, conversation := i, conversation
		group.Go(func() error {
			classified[i] = c.classify(ctx, conversation)
			return nil
		})
	}

	_ = group.Wait()

	risks = make([]*domain.ConversationRisk, 0, len(classified))
	for _, risk := range classified {
		if risk.Urgency != domain.RiskNormal || risk.UnreadCount > 3 {
			risks = append(risks, risk)
		}
	}

	return risks, totalUnread, nil
}

func (c *Classifier) classify(ctx context.Context, conversation hldomain.Conversation) *domain.ConversationRisk {
	churnFlags := c.rules.Matches(conversation.LastMessageBody, CategoryChurn)

	teamResponded := false
	if len(churnFlags) > 0 && conversation.ID != "" {
		teamResponded = c.hasTeamResponded(ctx, conversation.ID)
	}

	urgency := domain.RiskNormal
	switch {
	case len(churnFlags) > 0 && !teamResponded:
		urgency = domain.RiskChurn
	case conversation.UnreadCount > 5 && !teamResponded:
		urgency = domain.RiskHighPriority
	}

	return &domain.ConversationRisk{
		Name:           conversation.DisplayName(),
		Body:           truncate(conversation.LastMessageBody, 200),
		Type:           conversation.LastMessageType,
		UnreadCount:    conversation.UnreadCount,
		Urgency:        urgency,
		ChurnFlags:     churnFlags,
		ContactID:      conversation.ContactID,
		ConversationID: conversation.ID,
		TeamResponded:  teamResponded,
	}
}

// hasTeamResponded scans the conversation's bounded recent history,
// newest first, for the last inbound churn-keyword message, then for
// any outbound message strictly after it. A failed history fetch fails
// open: the team is assumed not to have responded so the conversation
// still gets flagged.
func (c *Classifier) hasTeamResponded(ctx context.Context, conversationID string) bool {
	messages, err := c.source.ConversationMessages(ctx, conversationID)
	if err != nil {
		partial := &domain.PartialFetchError{ConversationID: conversationID, Err: err}
		logrus.WithError(partial).Warn("classifier: could not check conversation history, assuming no team response")
		return false
	}

	var lastChurnTime int64
	for _, message := range messages {
		if message.Direction != hldomain.DirectionInbound {
			continue
		}
		if c.rules.HasMatch(message.Body, CategoryChurn) {
			lastChurnTime = message.DateAdded
			break
		}
	}

	if lastChurnTime == 0 {
		return false
	}

	for _, message := range messages {
		if message.Direction == hldomain.DirectionOutbound && message.DateAdded > lastChurnTime {
			return true
		}
	}

	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
