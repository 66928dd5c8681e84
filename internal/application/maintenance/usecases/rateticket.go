package usecases

import (
	"context"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketID uint
	Rating   int
	Feedback string
}

type RateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Number    string    `json:"number"`
	Rating    int       `json:"rating"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RateTicketUseCase records the reporter's evaluation of completed work.
// Rating is not a lifecycle transition: it writes no audit entry and sends no
// notification.
type RateTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	logger     logger.Interface
}

func NewRateTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	logger logger.Interface,
) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	uc.logger.Infow("executing rate ticket use case", "ticket_id", cmd.TicketID, "rating", cmd.Rating)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid rate ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := t.Rate(cmd.Rating, cmd.Feedback); err != nil {
		uc.logger.Warnw("rate rejected", "ticket_id", cmd.TicketID, "status", t.Status(), "error", err)
		return nil, mapTransitionError(err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist rating", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket rated successfully", "ticket_id", t.ID(), "rating", cmd.Rating)

	return &RateTicketResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Rating:    cmd.Rating,
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *RateTicketUseCase) validateCommand(cmd RateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if cmd.Rating < 1 || cmd.Rating > 5 {
		return errors.NewValidationError("rating must be between 1 and 5")
	}

	return nil
}
