package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// TransitionResult is the shared outcome shape of every lifecycle transition
// use case.
type TransitionResult struct {
	TicketID  uint      `json:"ticket_id"`
	Number    string    `json:"number"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// mapTransitionError translates a domain transition failure into the
// application error taxonomy. A precondition failure on the current status is
// a conflict (the caller's view of the ticket is stale); anything else is bad
// input.
func mapTransitionError(err error) error {
	var invalid *maintenance.InvalidTransitionError
	if stderrors.As(err, &invalid) {
		return errors.NewConflictError(invalid.Error(), fmt.Sprintf("current status: %s", invalid.Current))
	}
	return errors.NewValidationError(err.Error())
}

// drainEvents logs the domain events recorded on the entity since it was
// loaded, clearing them in the process.
func drainEvents(log logger.Interface, t *maintenance.Ticket) {
	for _, event := range t.Events() {
		log.Debugw("domain event",
			"ticket_id", t.ID(),
			"number", t.Number(),
			"event_type", fmt.Sprintf("%T", event),
			"event", event,
		)
	}
}

// notifyTransition attempts exactly one notification for an executed
// transition. Delivery failures are logged and swallowed.
func notifyTransition(ctx context.Context, notifier maintenance.Notifier, log logger.Interface, t *maintenance.Ticket, kind maintenance.EventKind) {
	drainEvents(log, t)
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, t, kind); err != nil {
		log.Warnw("lifecycle notification failed",
			"ticket_id", t.ID(),
			"number", t.Number(),
			"kind", string(kind),
			"error", err,
		)
	}
}
