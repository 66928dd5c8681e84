package maintenance

import "context"

// EventKind tags a lifecycle notification with the state the ticket entered.
type EventKind string

const (
	EventAssigned   EventKind = "assigned"
	EventProcessing EventKind = "processing"
	EventCompleted  EventKind = "completed"
	EventClosed     EventKind = "closed"
)

// Notifier is the boundary to the notification collaborator. The engine
// attempts exactly one Notify call per successful transition; delivery is
// best-effort and a failure never rolls back or fails the transition.
type Notifier interface {
	Notify(ctx context.Context, t *Ticket, kind EventKind) error
}
