package usecases

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type CompleteTicketCommand struct {
	TicketID          uint
	ResultDescription string
	ResultImages      []string
	Operator          string
}

type CompleteTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	auditRepo  maintenance.AuditLogRepository
	txManager  TransactionManager
	notifier   maintenance.Notifier
	logger     logger.Interface
}

func NewCompleteTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	auditRepo maintenance.AuditLogRepository,
	txManager TransactionManager,
	notifier maintenance.Notifier,
	logger logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*TransitionResult, error) {
	uc.logger.Infow("executing complete ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid complete ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	oldStatus := t.Status()

	if err := t.Complete(cmd.ResultDescription, cmd.ResultImages); err != nil {
		uc.logger.Warnw("complete rejected", "ticket_id", cmd.TicketID, "status", oldStatus, "error", err)
		return nil, mapTransitionError(err)
	}

	entry, err := maintenance.NewAuditEntry(
		t.ID(),
		cmd.Operator,
		vo.ActionCompleted,
		cmd.ResultDescription,
		cmd.ResultImages,
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
		uc.logger.Errorw("failed to persist completion", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	notifyTransition(ctx, uc.notifier, uc.logger, t, maintenance.EventCompleted)

	uc.logger.Infow("ticket completed successfully", "ticket_id", t.ID())

	return &TransitionResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *CompleteTicketUseCase) validateCommand(cmd CompleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.ResultDescription) == 0 {
		return errors.NewValidationError("result description is required")
	}

	if len(cmd.Operator) == 0 {
		return errors.NewValidationError("operator is required")
	}

	return nil
}
