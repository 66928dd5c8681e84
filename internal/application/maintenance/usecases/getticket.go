package usecases

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/dto"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// GetTicketQuery resolves a ticket either by ID or by its human-readable
// number; ID wins when both are set.
type GetTicketQuery struct {
	TicketID uint
	Number   string
}

type GetTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 && len(query.Number) == 0 {
		return nil, errors.NewValidationError("ticket ID or number is required")
	}

	var (
		t   *maintenance.Ticket
		err error
	)
	if query.TicketID != 0 {
		t, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	} else {
		t, err = uc.ticketRepo.GetByNumber(ctx, query.Number)
	}
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.TicketID, "number", query.Number, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
