package usecases

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/dto"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// GetAuditTrailQuery fetches a ticket's transition history. Entries are
// stored and returned in creation order; NewestFirst reverses the slice for
// display.
type GetAuditTrailQuery struct {
	TicketID    uint
	NewestFirst bool
}

type GetAuditTrailUseCase struct {
	ticketRepo maintenance.TicketRepository
	auditRepo  maintenance.AuditLogRepository
	logger     logger.Interface
}

func NewGetAuditTrailUseCase(
	ticketRepo maintenance.TicketRepository,
	auditRepo maintenance.AuditLogRepository,
	logger logger.Interface,
) *GetAuditTrailUseCase {
	return &GetAuditTrailUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

func (uc *GetAuditTrailUseCase) Execute(ctx context.Context, query GetAuditTrailQuery) ([]dto.AuditEntryDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// Resolve the ticket first so an unknown ID is a not-found, not an
	// empty trail.
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		uc.logger.Warnw("failed to get ticket for audit trail", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	entries, err := uc.auditRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list audit entries")
	}

	result := make([]dto.AuditEntryDTO, 0, len(entries))
	if query.NewestFirst {
		for i := len(entries) - 1; i >= 0; i-- {
			result = append(result, dto.ToAuditEntryDTO(entries[i]))
		}
	} else {
		for _, e := range entries {
			result = append(result, dto.ToAuditEntryDTO(e))
		}
	}

	return result, nil
}
