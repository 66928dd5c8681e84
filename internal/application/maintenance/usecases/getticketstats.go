package usecases

import (
	"context"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	CommunityID *uint
	PropertyID  *uint
	Category    string
	Priority    string
	Status      string
	Search      string
}

// CategoryStat is one current-month category bucket with its share of the
// month's total.
type CategoryStat struct {
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TicketStatsResult struct {
	ByStatus            map[string]int64        `json:"by_status"`
	ByPriority          map[string]int64        `json:"by_priority"`
	ByCategoryThisMonth map[string]CategoryStat `json:"by_category_this_month"`
	MonthTotal          int64                   `json:"month_total"`
}

// GetTicketStatsUseCase aggregates ticket counts over the same filter the
// list view uses, so displayed totals always reconcile with the list next to
// them. Snapshots are cached when a stats store is wired; cache failures fall
// through to recomputation.
type GetTicketStatsUseCase struct {
	ticketRepo maintenance.TicketRepository
	statsStore StatsStore
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo maintenance.TicketRepository,
	statsStore StatsStore,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		statsStore: statsStore,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*TicketStatsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		uc.logger.Warnw("invalid ticket stats query", "error", err)
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var cacheKey string
	if uc.statsStore != nil {
		cacheKey = uc.statsStore.Key(filter, monthStart)
		var cached TicketStatsResult
		hit, err := uc.statsStore.Get(ctx, cacheKey, &cached)
		if err != nil {
			uc.logger.Warnw("stats cache read failed", "key", cacheKey, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	byStatus, err := uc.ticketRepo.CountByStatus(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, errors.NewInternalError("failed to compute ticket statistics")
	}

	byPriority, err := uc.ticketRepo.CountByPriority(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, errors.NewInternalError("failed to compute ticket statistics")
	}

	byCategory, err := uc.ticketRepo.CountByCategory(ctx, filter, monthStart, monthEnd)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by category", "error", err)
		return nil, errors.NewInternalError("failed to compute ticket statistics")
	}

	result := &TicketStatsResult{
		ByStatus:            make(map[string]int64),
		ByPriority:          make(map[string]int64),
		ByCategoryThisMonth: make(map[string]CategoryStat),
	}

	for _, status := range []vo.Status{
		vo.StatusPending,
		vo.StatusAssigned,
		vo.StatusProcessing,
		vo.StatusCompleted,
		vo.StatusClosed,
	} {
		result.ByStatus[status.String()] = byStatus[status]
	}

	for _, priority := range vo.AllPriorities() {
		result.ByPriority[priority.String()] = byPriority[priority]
	}

	var monthTotal int64
	for _, count := range byCategory {
		monthTotal += count
	}
	result.MonthTotal = monthTotal

	// Only categories with at least one ticket this month get a bucket.
	for _, category := range vo.AllCategories() {
		count := byCategory[category]
		if count == 0 {
			continue
		}
		result.ByCategoryThisMonth[category.String()] = CategoryStat{
			Count:      count,
			Percentage: float64(count) / float64(monthTotal) * 100,
		}
	}

	if uc.statsStore != nil {
		if err := uc.statsStore.Set(ctx, cacheKey, result); err != nil {
			uc.logger.Warnw("stats cache write failed", "key", cacheKey, "error", err)
		}
	}

	return result, nil
}

func (uc *GetTicketStatsUseCase) buildFilter(query GetTicketStatsQuery) (maintenance.TicketFilter, error) {
	filter := maintenance.TicketFilter{
		CommunityID: query.CommunityID,
		PropertyID:  query.PropertyID,
		Search:      query.Search,
	}

	if len(query.Category) > 0 {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return maintenance.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	if len(query.Priority) > 0 {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return maintenance.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if len(query.Status) > 0 {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return maintenance.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	return filter, nil
}
