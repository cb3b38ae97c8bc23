package domain

// RiskFlag classifies an unread conversation by urgency.
type RiskFlag string

const (
	RiskChurn        RiskFlag = "CHURN_RISK"
	RiskHighPriority RiskFlag = "HIGH_PRIORITY"
	RiskNormal       RiskFlag = "NORMAL"
)

// RevenueMetrics holds the subscription-derived numbers shown on the
// admin dashboard. MRR and ARR are whole currency units.
type RevenueMetrics struct {
	ActiveCount  int     `json:"active_count"`
	MRR          int     `json:"mrr"`
	ARR          int     `json:"arr"`
	Trialing     int     `json:"trialing"`
	Canceled30d  int     `json:"canceled_30d"`
	ChurnRate    float64 `json:"churn_rate"`
	NewThisMonth int     `json:"new_this_month"`
}

// ConversationRisk is one unread conversation that survived the spam
// and relevance filters, tagged with its urgency classification.
type ConversationRisk struct {
	Name           string   `json:"name"`
	Body           string   `json:"body"`
	Type           string   `json:"type"`
	UnreadCount    int      `json:"unread_count"`
	Urgency        RiskFlag `json:"urgency"`
	ChurnFlags     []string `json:"churn_flags"`
	ContactID      string   `json:"contact_id"`
	ConversationID string   `json:"conversation_id"`
	TeamResponded  bool     `json:"team_responded"`
}

// DashboardReport is built fresh on every request; it is never cached
// or persisted. TotalUnread counts every conversation that passed the
// unread/spam filters, which is a superset of the three buckets.
type DashboardReport struct {
	Date         string              `json:"date"`
	Revenue      *RevenueMetrics     `json:"revenue"`
	ChurnRisks   []*ConversationRisk `json:"churn_risks"`
	HighPriority []*ConversationRisk `json:"high_priority"`
	Normal       []*ConversationRisk `json:"normal"`
	TotalUnread  int                 `json:"total_unread"`
}
