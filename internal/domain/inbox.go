package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus tracks a quote request through the back office.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteQuoted   QuoteStatus = "quoted"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteDeclined QuoteStatus = "declined"
	QuoteExpired  QuoteStatus = "expired"
)

// Valid reports whether the status is a defined value.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuotePending, QuoteQuoted, QuoteAccepted, QuoteDeclined, QuoteExpired:
		return true
	}
	return false
}

// QuoteRequest is a public "how much would this cost" submission.
type QuoteRequest struct {
	ID           uuid.UUID
	CustomerName string
	Email        string
	Phone        string
	ServiceType  string
	VehicleYear  *int
	VehicleMake  *string
	VehicleModel *string
	Details      *string
	Status       QuoteStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MessageStatus tracks a contact message through the back office.
type MessageStatus string

const (
	MessageNew       MessageStatus = "new"
	MessageRead      MessageStatus = "read"
	MessageResponded MessageStatus = "responded"
	MessageArchived  MessageStatus = "archived"
)

// Valid reports whether the status is a defined value.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageResponded, MessageArchived:
		return true
	}
	return false
}

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Subject   string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InboxFilter pages through quotes or contact messages, optionally
// narrowed to one status.
type InboxFilter struct {
	Status   *string
	Page     int // 1-based
	PageSize int
}
