package maintenance

import (
	"time"
)

// TicketCreatedEvent records the intake of a new maintenance ticket. It is
// recorded by the constructor, before the store has assigned an ID.
type TicketCreatedEvent struct {
	PropertyID  uint
	CommunityID uint
	Category    string
	Priority    string
	Timestamp   time.Time
}

func NewTicketCreatedEvent(
	propertyID uint,
	communityID uint,
	category string,
	priority string,
	timestamp time.Time,
) TicketCreatedEvent {
	return TicketCreatedEvent{
		PropertyID:  propertyID,
		CommunityID: communityID,
		Category:    category,
		Priority:    priority,
		Timestamp:   timestamp,
	}
}

type TicketAssignedEvent struct {
	TicketID  uint
	Number    string
	Assignee  string
	Timestamp time.Time
}

func NewTicketAssignedEvent(
	ticketID uint,
	number string,
	assignee string,
	timestamp time.Time,
) TicketAssignedEvent {
	return TicketAssignedEvent{
		TicketID:  ticketID,
		Number:    number,
		Assignee:  assignee,
		Timestamp: timestamp,
	}
}

type TicketStatusChangedEvent struct {
	TicketID  uint
	Number    string
	OldStatus string
	NewStatus string
	Timestamp time.Time
}

func NewTicketStatusChangedEvent(
	ticketID uint,
	number string,
	oldStatus string,
	newStatus string,
	timestamp time.Time,
) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		TicketID:  ticketID,
		Number:    number,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: timestamp,
	}
}
