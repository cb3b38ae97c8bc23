package domain

// Message directions on a conversation thread.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Conversation is one entry from the conversation search endpoint,
// sorted by last message date descending upstream.
type Conversation struct {
	ID              string `json:"id"`
	FullName        string `json:"fullName"`
	ContactName     string `json:"contactName"`
	LastMessageBody string `json:"lastMessageBody"`
	LastMessageType string `json:"lastMessageType"`
	UnreadCount     int    `json:"unreadCount"`
	ContactID       string `json:"contactId"`
}

// DisplayName prefers the contact's full name over the short contact
// name. Empty means the CRM has no usable name for the contact.
func (c Conversation) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.ContactName
}

// Message is one entry of a conversation's history. DateAdded is
// epoch milliseconds as delivered by the API.
type Message struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	Direction string `json:"direction"`
	DateAdded int64  `json:"dateAdded"`
}
