package notification

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// LogChannel records every lifecycle notification in the application log. It
// is always registered so notifications remain observable even when no
// delivery channel is configured.
type LogChannel struct {
	logger logger.Interface
}

func NewLogChannel(log logger.Interface) *LogChannel {
	return &LogChannel{logger: log.Named("notification.log")}
}

func (c *LogChannel) Name() string {
	return "log"
}

func (c *LogChannel) Send(ctx context.Context, msg Message) error {
	c.logger.Infow("lifecycle notification",
		"message_id", msg.ID,
		"ticket_number", msg.TicketNumber,
		"kind", string(msg.Kind),
		"subject", msg.Subject,
	)
	return nil
}
