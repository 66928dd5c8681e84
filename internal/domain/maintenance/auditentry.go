package maintenance

import (
	"fmt"
	"time"

	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

// AuditEntry is one immutable record of an executed lifecycle transition.
// Entries are created exclusively by the lifecycle use cases, never by
// outside callers, and are never updated or deleted once written.
type AuditEntry struct {
	id          uint
	ticketID    uint
	operator    string
	action      vo.Action
	description string
	images      []string
	createdAt   time.Time
}

func NewAuditEntry(
	ticketID uint,
	operator string,
	action vo.Action,
	description string,
	images []string,
) (*AuditEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(operator) == 0 {
		return nil, fmt.Errorf("operator is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	if images == nil {
		images = []string{}
	}

	return &AuditEntry{
		ticketID:    ticketID,
		operator:    operator,
		action:      action,
		description: description,
		images:      images,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructAuditEntry(
	id uint,
	ticketID uint,
	operator string,
	action vo.Action,
	description string,
	images []string,
	createdAt time.Time,
) (*AuditEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}

	if images == nil {
		images = []string{}
	}

	return &AuditEntry{
		id:          id,
		ticketID:    ticketID,
		operator:    operator,
		action:      action,
		description: description,
		images:      images,
		createdAt:   createdAt,
	}, nil
}

func (e *AuditEntry) ID() uint             { return e.id }
func (e *AuditEntry) TicketID() uint       { return e.ticketID }
func (e *AuditEntry) Operator() string     { return e.operator }
func (e *AuditEntry) Action() vo.Action    { return e.action }
func (e *AuditEntry) Description() string  { return e.description }
func (e *AuditEntry) CreatedAt() time.Time { return e.createdAt }

func (e *AuditEntry) Images() []string {
	imagesCopy := make([]string, len(e.images))
	copy(imagesCopy, e.images)
	return imagesCopy
}

func (e *AuditEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit entry ID cannot be zero")
	}
	e.id = id
	return nil
}
