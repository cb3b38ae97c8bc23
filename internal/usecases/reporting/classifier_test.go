package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	hldomain "github.com/automateboss/ops-portal-api/infrastructure/integrator/highlevel/domain"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/internal/usecases/reporting/mocks"
	"github.com/automateboss/ops-portal-api/pkg/log"
)

func TestClassifier_Scan_SkipsReadConversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Alice", LastMessageBody: "I want to cancel everything", UnreadCount: 0},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	assert.Empty(t, risks)
	assert.Equal(t, 0, totalUnread)
}

func TestClassifier_Scan_SpamBeatsChurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	// Spam filtering runs before keyword classification, so the churn
	// keyword in the same body never gets a chance to match and no
	// history fetch happens.
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Spammer", LastMessageBody: "cancel dmarc now", UnreadCount: 4},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	assert.Empty(t, risks)
	assert.Equal(t, 0, totalUnread)
}

func TestClassifier_Scan_SkipsNamelessContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "   ", ContactName: "", LastMessageBody: "hello", UnreadCount: 2},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	assert.Empty(t, risks)
	assert.Equal(t, 0, totalUnread)
}

func TestClassifier_Scan_ChurnRiskWhenTeamSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Alice", LastMessageBody: "I want a refund", UnreadCount: 1},
	}, nil)
	source.EXPECT().ConversationMessages(gomock.Any(), "conv_1").Return([]hldomain.Message{
		{Direction: hldomain.DirectionInbound, Body: "I want a refund", DateAdded: 2000},
		{Direction: hldomain.DirectionOutbound, Body: "welcome aboard", DateAdded: 1000},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, domain.RiskChurn, risks[0].Urgency)
	assert.Equal(t, []string{"refund"}, risks[0].ChurnFlags)
	assert.False(t, risks[0].TeamResponded)
	assert.Equal(t, 1, totalUnread)
}

func TestClassifier_Scan_NeverChurnRiskAfterTeamResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Alice", LastMessageBody: "thinking about canceling", UnreadCount: 10},
	}, nil)
	// Outbound strictly after the last inbound churn message means the
	// team already responded.
	source.EXPECT().ConversationMessages(gomock.Any(), "conv_1").Return([]hldomain.Message{
		{Direction: hldomain.DirectionOutbound, Body: "we can help with that", DateAdded: 3000},
		{Direction: hldomain.DirectionInbound, Body: "thinking about canceling", DateAdded: 2000},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, _, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.NotEqual(t, domain.RiskChurn, risks[0].Urgency)
	assert.True(t, risks[0].TeamResponded)
}

func TestClassifier_Scan_HistoryFetchFailureFailsOpen(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Alice", LastMessageBody: "I will quit", UnreadCount: 1},
	}, nil)
	source.EXPECT().ConversationMessages(gomock.Any(), "conv_1").
		Return(nil, &domain.UpstreamError{Service: "highlevel", Status: 500, Message: "boom"})

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	// A single history failure is contained: the scan succeeds and the
	// conversation is flagged as if the team had not responded.
	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, domain.RiskChurn, risks[0].Urgency)
	assert.False(t, risks[0].TeamResponded)
	assert.Equal(t, 1, totalUnread)
}

func TestClassifier_Scan_HighPriorityByUnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	// No churn keywords, so no history fetch is made.
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Bob", LastMessageBody: "any update on my site?", UnreadCount: 6},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, _, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, domain.RiskHighPriority, risks[0].Urgency)
}

func TestClassifier_Scan_QuietNormalConversationsExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).Return([]hldomain.Conversation{
		{ID: "conv_1", FullName: "Bob", LastMessageBody: "thanks!", UnreadCount: 2},
		{ID: "conv_2", FullName: "Carol", LastMessageBody: "checking in", UnreadCount: 4},
	}, nil)

	classifier := NewClassifier(source, DefaultRuleSet())

	risks, totalUnread, err := classifier.Scan(context.Background())

	require.NoError(t, err)
	// conv_1 is NORMAL with unreadCount <= 3: counted but not emitted.
	require.Len(t, risks, 1)
	assert.Equal(t, "conv_2", risks[0].ConversationID)
	assert.Equal(t, domain.RiskNormal, risks[0].Urgency)
	assert.Equal(t, 2, totalUnread)
}

func TestClassifier_Scan_FeedFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockConversationSource(ctrl)
	source.EXPECT().RecentConversations(gomock.Any()).
		Return(nil, &domain.UpstreamError{Service: "highlevel", Status: 502, Message: "bad gateway"})

	classifier := NewClassifier(source, DefaultRuleSet())

	_, _, err := classifier.Scan(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))

	long := make([]rune, 0, 250)
	for i := 0; i < 250; i++ {
		long = append(long, 'é')
	}
	truncated := truncate(string(long), 200)
	assert.Equal(t, 200, len([]rune(truncated)))
}
