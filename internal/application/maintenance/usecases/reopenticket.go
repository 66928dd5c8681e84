package usecases

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID uint
	Reason   string
	Operator string
}

type ReopenTicketUseCase struct {
	ticketRepo maintenance.TicketRepository
	auditRepo  maintenance.AuditLogRepository
	txManager  TransactionManager
	notifier   maintenance.Notifier
	logger     logger.Interface
}

func NewReopenTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	auditRepo maintenance.AuditLogRepository,
	txManager TransactionManager,
	notifier maintenance.Notifier,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*TransitionResult, error) {
	uc.logger.Infow("executing reopen ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid reopen ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	oldStatus := t.Status()

	if err := t.Reopen(); err != nil {
		uc.logger.Warnw("reopen rejected", "ticket_id", cmd.TicketID, "status", oldStatus, "error", err)
		return nil, mapTransitionError(err)
	}

	description := "reopened for rework"
	if len(cmd.Reason) > 0 {
		description = cmd.Reason
	}

	entry, err := maintenance.NewAuditEntry(
		t.ID(),
		cmd.Operator,
		vo.ActionReopened,
		description,
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
		uc.logger.Errorw("failed to persist reopen", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	notifyTransition(ctx, uc.notifier, uc.logger, t, maintenance.EventProcessing)

	uc.logger.Infow("ticket reopened successfully", "ticket_id", t.ID())

	return &TransitionResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *ReopenTicketUseCase) validateCommand(cmd ReopenTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.Operator) == 0 {
		return errors.NewValidationError("operator is required")
	}

	return nil
}
