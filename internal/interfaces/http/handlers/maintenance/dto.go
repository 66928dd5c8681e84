package maintenance

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/usecases"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/utils"
)

type CreateTicketRequest struct {
	PropertyID    uint     `json:"property_id" binding:"required"`
	Reporter      string   `json:"reporter" binding:"required"`
	ReporterPhone string   `json:"reporter_phone" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Priority      string   `json:"priority"`
	Description   string   `json:"description" binding:"required"`
	Images        []string `json:"images"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		PropertyID:    r.PropertyID,
		Reporter:      r.Reporter,
		ReporterPhone: r.ReporterPhone,
		Category:      r.Category,
		Priority:      r.Priority,
		Description:   r.Description,
		Images:        r.Images,
	}
}

type AssignTicketRequest struct {
	Assignee string `json:"assignee" binding:"required"`
	Operator string `json:"operator" binding:"required"`
}

type StartTicketRequest struct {
	Operator string `json:"operator" binding:"required"`
}

type CompleteTicketRequest struct {
	ResultDescription string   `json:"result_description" binding:"required"`
	ResultImages      []string `json:"result_images"`
	Operator          string   `json:"operator" binding:"required"`
}

type CloseTicketRequest struct {
	Reason   string `json:"reason"`
	Operator string `json:"operator" binding:"required"`
}

type ReopenTicketRequest struct {
	Reason   string `json:"reason"`
	Operator string `json:"operator" binding:"required"`
}

type RateTicketRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

type ListTicketsRequest struct {
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

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		CommunityID: r.CommunityID,
		PropertyID:  r.PropertyID,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
		Search:      r.Search,
		Page:        r.Page,
		PageSize:    r.PageSize,
		SortBy:      r.SortBy,
		SortOrder:   r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Category:  c.Query("category"),
		Priority:  c.Query("priority"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if v := c.Query("community_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.NewBadRequestError("invalid community ID")
		}
		communityID := uint(id)
		req.CommunityID = &communityID
	}

	if v := c.Query("property_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.NewBadRequestError("invalid property ID")
		}
		propertyID := uint(id)
		req.PropertyID = &propertyID
	}

	return req, nil
}

func parseStatsQuery(c *gin.Context) (usecases.GetTicketStatsQuery, error) {
	query := usecases.GetTicketStatsQuery{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	if v := c.Query("community_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return query, errors.NewBadRequestError("invalid community ID")
		}
		communityID := uint(id)
		query.CommunityID = &communityID
	}

	if v := c.Query("property_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return query, errors.NewBadRequestError("invalid property ID")
		}
		propertyID := uint(id)
		query.PropertyID = &propertyID
	}

	return query, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}
