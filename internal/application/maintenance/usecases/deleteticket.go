package usecases

import (
	"context"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Operator string
}

type DeleteTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Number    string    `json:"number"`
	DeletedAt time.Time `json:"deleted_at"`
}

// DeleteTicketUseCase permanently removes a ticket and its audit trail. This
// is an administrative operation outside the lifecycle: it is not a
// transition, writes no audit entry and sends no notification.
type DeleteTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	auditRepo  maintenance.AuditLogRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	auditRepo maintenance.AuditLogRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "operator", cmd.Operator)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid delete ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.auditRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted",
		"ticket_id", t.ID(),
		"number", t.Number(),
		"operator", cmd.Operator,
	)

	return &DeleteTicketResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		DeletedAt: time.Now(),
	}, nil
}

func (uc *DeleteTicketUseCase) validateCommand(cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.Operator) == 0 {
		return errors.NewValidationError("operator is required")
	}

	return nil
}
