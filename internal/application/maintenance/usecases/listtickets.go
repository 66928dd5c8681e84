package usecases

import (
	"context"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/dto"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/utils"
)

type ListTicketsQuery struct {
	CommunityID *uint
	PropertyID  *uint
	Category    string
	Priority    string
	Status      string
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO `json:"tickets"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo maintenance.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo maintenance.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		uc.logger.Warnw("invalid list tickets query", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (maintenance.TicketFilter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := maintenance.TicketFilter{
		CommunityID: query.CommunityID,
		PropertyID:  query.PropertyID,
		Search:      query.Search,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
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
