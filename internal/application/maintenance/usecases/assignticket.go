package usecases

import (
	"context"
	"fmt"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID uint
	Assignee string
	Operator string
}

type AssignTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	auditRepo  maintenance.AuditLogRepository
	txManager  TransactionManager
	notifier   maintenance.Notifier
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	auditRepo maintenance.AuditLogRepository,
	txManager TransactionManager,
	notifier maintenance.Notifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*TransitionResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "assignee", cmd.Assignee)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	oldStatus := t.Status()

	if err := t.Assign(cmd.Assignee); err != nil {
		uc.logger.Warnw("assign rejected", "ticket_id", cmd.TicketID, "status", oldStatus, "error", err)
		return nil, mapTransitionError(err)
	}

	entry, err := maintenance.NewAuditEntry(
		t.ID(),
		cmd.Operator,
		vo.ActionAssigned,
		fmt.Sprintf("assigned to %s", cmd.Assignee),
		nil,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist assignment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	notifyTransition(ctx, uc.notifier, uc.logger, t, maintenance.EventAssigned)

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "assignee", cmd.Assignee)

	return &TransitionResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.Assignee) == 0 {
		return errors.NewValidationError("assignee is required")
	}

	if len(cmd.Operator) == 0 {
		return errors.NewValidationError("operator is required")
	}

	return nil
}
