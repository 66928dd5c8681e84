package maintenance

import (
	"context"
	"time"

	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

// TicketFilter is the predicate shared by the list view and every statistics
// aggregation, so displayed totals always match the filtered list next to
// them.
type TicketFilter struct {
	CommunityID *uint
	PropertyID  *uint
	Category    *vo.Category
	Priority    *vo.Priority
	Status      *vo.Status
	// Search matches against ticket number, reporter and property unit
	// identifier.
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists a mutated ticket guarded by an optimistic version
	// check; a concurrent writer winning the race surfaces as a conflict
	// error, never as a silent lost update.
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, filter TicketFilter) (map[vo.Status]int64, error)
	CountByPriority(ctx context.Context, filter TicketFilter) (map[vo.Priority]int64, error)
	// CountByCategory restricts the filtered set to tickets created in
	// [from, to).
	CountByCategory(ctx context.Context, filter TicketFilter, from, to time.Time) (map[vo.Category]int64, error)
	// Delete permanently removes a ticket. Administrative removal, not a
	// lifecycle transition.
	Delete(ctx context.Context, ticketID uint) error
}

// AuditLogRepository is append-only while its ticket exists: entries are
// written once per executed transition and read back in creation order. The
// trail is removed only together with its ticket.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*AuditEntry, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
