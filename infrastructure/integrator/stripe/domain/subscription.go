package domain

// Subscription statuses used by the dashboard walks.
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusTrialing = "trialing"
)

// Subscription is the slice of Stripe's subscription object this
// service reads. Timestamps are epoch seconds; amounts are minor
// currency units.
type Subscription struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	Created    int64             `json:"created"`
	CanceledAt int64             `json:"canceled_at"`
	Items      SubscriptionItems `json:"items"`
}

type SubscriptionItems struct {
	Data []SubscriptionItem `json:"data"`
}

type SubscriptionItem struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
}

type Price struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unit_amount"`
}
