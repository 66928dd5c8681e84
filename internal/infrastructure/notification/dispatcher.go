// Package notification implements the lifecycle notification collaborator.
// The engine hands it a ticket and the state just entered; the dispatcher
// fans the message out to whichever channels are configured. Delivery is
// best-effort: channel failures are logged and swallowed, never surfaced to
// the transition that triggered them.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/goroutine"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// Message is the rendered lifecycle notification delivered to channels.
type Message struct {
	ID           string
	TicketID     uint
	TicketNumber string
	Kind         maintenance.EventKind
	Subject      string
	Body         string
	CreatedAt    time.Time
}

// Channel delivers a rendered message through one medium.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Dispatcher implements maintenance.Notifier by fanning a message out to all
// configured channels.
type Dispatcher struct {
	channels []Channel
	logger   logger.Interface
}

func NewDispatcher(log logger.Interface, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   log.Named("notification"),
	}
}

// sendTimeout bounds each channel delivery so a stuck SMTP server cannot
// pile up goroutines.
const sendTimeout = 15 * time.Second

// Notify renders one message for the transition and attempts each channel
// once, detached from the caller. It never returns a delivery error: the
// transition is the unit of correctness, notification is not.
func (d *Dispatcher) Notify(ctx context.Context, t *maintenance.Ticket, kind maintenance.EventKind) error {
	msg := renderMessage(t, kind)

	for _, ch := range d.channels {
		ch := ch
		goroutine.SafeGo(d.logger, "notification."+ch.Name(), func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			if err := ch.Send(sendCtx, msg); err != nil {
				d.logger.Warnw("notification delivery failed",
					"channel", ch.Name(),
					"message_id", msg.ID,
					"ticket_number", msg.TicketNumber,
					"kind", string(kind),
					"error", err,
				)
				return
			}
			d.logger.Debugw("notification delivered",
				"channel", ch.Name(),
				"message_id", msg.ID,
				"ticket_number", msg.TicketNumber,
			)
		})
	}

	return nil
}

func renderMessage(t *maintenance.Ticket, kind maintenance.EventKind) Message {
	var subject, body string

	switch kind {
	case maintenance.EventAssigned:
		subject = fmt.Sprintf("Ticket %s assigned", t.Number())
		body = fmt.Sprintf("Maintenance ticket %s has been assigned to %s.", t.Number(), t.AssignedTo())
	case maintenance.EventProcessing:
		subject = fmt.Sprintf("Ticket %s in progress", t.Number())
		body = fmt.Sprintf("Work on maintenance ticket %s has started.", t.Number())
	case maintenance.EventCompleted:
		subject = fmt.Sprintf("Ticket %s completed", t.Number())
		body = fmt.Sprintf("Maintenance ticket %s has been completed: %s", t.Number(), t.ResultDescription())
	case maintenance.EventClosed:
		subject = fmt.Sprintf("Ticket %s closed", t.Number())
		body = fmt.Sprintf("Maintenance ticket %s has been closed.", t.Number())
	default:
		subject = fmt.Sprintf("Ticket %s updated", t.Number())
		body = fmt.Sprintf("Maintenance ticket %s changed state to %s.", t.Number(), t.Status())
	}

	return Message{
		ID:           uuid.NewString(),
		TicketID:     t.ID(),
		TicketNumber: t.Number(),
		Kind:         kind,
		Subject:      subject,
		Body:         body,
		CreatedAt:    time.Now(),
	}
}
