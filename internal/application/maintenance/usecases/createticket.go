package usecases

import (
	"context"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/property"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// maxNumberAttempts bounds the regenerate-and-retry loop when a generated
// ticket number collides with an existing one.
const maxNumberAttempts = 5

type CreateTicketCommand struct {
	PropertyID    uint
	Reporter      string
	ReporterPhone string
	Category      string
	// Priority is optional on intake; an omitted priority defaults to low.
	Priority    string
	Description string
	Images      []string
}

type CreateTicketResult struct {
	TicketID    uint      `json:"ticket_id"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	CommunityID uint      `json:"community_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo   maintenance.TicketRepository
	propertyRepo property.PropertyRepository
	numberGen    maintenance.NumberGenerator
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo maintenance.TicketRepository,
	propertyRepo property.PropertyRepository,
	numberGen maintenance.NumberGenerator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		propertyRepo: propertyRepo,
		numberGen:    numberGen,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "property_id", cmd.PropertyID, "reporter", cmd.Reporter)

	if cmd.Priority == "" {
		cmd.Priority = vo.PriorityLow.String()
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	unit, err := uc.propertyRepo.GetByID(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Errorw("failed to resolve property", "property_id", cmd.PropertyID, "error", err)
		return nil, err
	}

	// The number's random suffix can collide within a day; the unique
	// constraint on the store is the arbiter, so regenerate and retry on
	// duplicate.
	var created *maintenance.Ticket
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		t, err := maintenance.NewTicket(
			unit.ID(),
			unit.CommunityID(),
			cmd.Reporter,
			cmd.ReporterPhone,
			vo.Category(cmd.Category),
			vo.Priority(cmd.Priority),
			cmd.Description,
			cmd.Images,
		)
		if err != nil {
			uc.logger.Errorw("failed to create ticket entity", "error", err)
			return nil, errors.NewValidationError(err.Error())
		}

		number, err := uc.numberGen.Generate(ctx)
		if err != nil {
			uc.logger.Errorw("failed to generate ticket number", "error", err)
			return nil, errors.NewInternalError("failed to generate ticket number")
		}
		if err := t.SetNumber(number); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}

		err = uc.ticketRepo.Save(ctx, t)
		if err == nil {
			created = t
			break
		}
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("ticket number collision, regenerating",
				"number", number,
				"attempt", attempt,
			)
			continue
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}
	if created == nil {
		uc.logger.Errorw("exhausted ticket number attempts", "attempts", maxNumberAttempts)
		return nil, errors.NewInternalError("failed to allocate a unique ticket number")
	}

	drainEvents(uc.logger, created)
	uc.logger.Infow("ticket created successfully",
		"ticket_id", created.ID(),
		"number", created.Number(),
		"community_id", created.CommunityID(),
	)

	return &CreateTicketResult{
		TicketID:    created.ID(),
		Number:      created.Number(),
		Status:      created.Status().String(),
		CommunityID: created.CommunityID(),
		CreatedAt:   created.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.PropertyID == 0 {
		return errors.NewValidationError("property ID is required")
	}

	if len(cmd.Reporter) == 0 {
		return errors.NewValidationError("reporter is required")
	}

	if len(cmd.ReporterPhone) == 0 {
		return errors.NewValidationError("reporter phone is required")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
