package domain

import "time"

// SystemSenderID is the well-known identity used when the platform
// itself creates tickets or messages on behalf of an external event.
const SystemSenderID = "00000000-0000-0000-0000-000000000000"

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

type TicketType string

const (
	TicketSupport TicketType = "support"
	TicketBilling TicketType = "billing"
)

// Ticket is a client support request. Reference is a short
// human-facing code printed in notifications.
type Ticket struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	Subject        string       `json:"subject"`
	TicketType     TicketType   `json:"ticket_type"`
	Status         TicketStatus `json:"status"`
	Reference      string       `json:"reference"`
	CreatedBy      string       `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
}

// TicketMessage is one entry in a ticket's thread.
type TicketMessage struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Content   string    `json:"content"`
	SenderID  string    `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TrailerRequestStatus string

const (
	TrailerRequestPending  TrailerRequestStatus = "pending"
	TrailerRequestApproved TrailerRequestStatus = "approved"
	TrailerRequestRejected TrailerRequestStatus = "rejected"
)

// TrailerRequest is an inventory request raised through a CRM form
// whose name mentions "trailer".
type TrailerRequest struct {
	ID             string               `json:"id"`
	OrganizationID string               `json:"organization_id"`
	Status         TrailerRequestStatus `json:"status"`
	Make           string               `json:"make"`
	Model          string               `json:"model"`
	Source         string               `json:"source"`
	CreatedAt      time.Time            `json:"created_at"`
}
