package usecases

import (
	"context"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/dto"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
)

// TransactionManager runs a function with all repository calls inside it
// sharing one database transaction, carried through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsStore caches computed statistics snapshots. A cache miss or cache
// failure falls through to recomputation.
type StatsStore interface {
	Key(filter maintenance.TicketFilter, month time.Time) string
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*TransitionResult, error)
}

type StartTicketExecutor interface {
	Execute(ctx context.Context, cmd StartTicketCommand) (*TransitionResult, error)
}

type CompleteTicketExecutor interface {
	Execute(ctx context.Context, cmd CompleteTicketCommand) (*TransitionResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*TransitionResult, error)
}

type ReopenTicketExecutor interface {
	Execute(ctx context.Context, cmd ReopenTicketCommand) (*TransitionResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetAuditTrailExecutor interface {
	Execute(ctx context.Context, query GetAuditTrailQuery) ([]dto.AuditEntryDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*TicketStatsResult, error)
}
