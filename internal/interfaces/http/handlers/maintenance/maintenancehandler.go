// Package maintenance exposes the ticket lifecycle over HTTP. Handlers
// translate between transport and the application use cases; all lifecycle
// rules live below this layer.
package maintenance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/usecases"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/utils"
)

type MaintenanceHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	startTicketUC    usecases.StartTicketExecutor
	completeTicketUC usecases.CompleteTicketExecutor
	closeTicketUC    usecases.CloseTicketExecutor
	reopenTicketUC   usecases.ReopenTicketExecutor
	rateTicketUC     usecases.RateTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	getAuditTrailUC  usecases.GetAuditTrailExecutor
	getStatsUC       usecases.GetTicketStatsExecutor
	logger           logger.Interface
}

func NewMaintenanceHandler(
	createTicketUC usecases.CreateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	startTicketUC usecases.StartTicketExecutor,
	completeTicketUC usecases.CompleteTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getAuditTrailUC usecases.GetAuditTrailExecutor,
	getStatsUC usecases.GetTicketStatsExecutor,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		createTicketUC:   createTicketUC,
		assignTicketUC:   assignTicketUC,
		startTicketUC:    startTicketUC,
		completeTicketUC: completeTicketUC,
		closeTicketUC:    closeTicketUC,
		reopenTicketUC:   reopenTicketUC,
		rateTicketUC:     rateTicketUC,
		deleteTicketUC:   deleteTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		getAuditTrailUC:  getAuditTrailUC,
		getStatsUC:       getStatsUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /maintenance
func (h *MaintenanceHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Maintenance ticket created successfully")
}

// GetTicket handles GET /maintenance/:id
func (h *MaintenanceHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /maintenance
func (h *MaintenanceHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// AssignTicket handles POST /maintenance/:id/assign
func (h *MaintenanceHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID: ticketID,
		Assignee: req.Assignee,
		Operator: req.Operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// StartTicket handles POST /maintenance/:id/start
func (h *MaintenanceHandler) StartTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StartTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.startTicketUC.Execute(c.Request.Context(), usecases.StartTicketCommand{
		TicketID: ticketID,
		Operator: req.Operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket processing started", result)
}

// CompleteTicket handles POST /maintenance/:id/complete
func (h *MaintenanceHandler) CompleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.completeTicketUC.Execute(c.Request.Context(), usecases.CompleteTicketCommand{
		TicketID:          ticketID,
		ResultDescription: req.ResultDescription,
		ResultImages:      req.ResultImages,
		Operator:          req.Operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket completed successfully", result)
}

// CloseTicket handles POST /maintenance/:id/close
func (h *MaintenanceHandler) CloseTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		Reason:   req.Reason,
		Operator: req.Operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result)
}

// ReopenTicket handles POST /maintenance/:id/reopen
func (h *MaintenanceHandler) ReopenTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReopenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), usecases.ReopenTicketCommand{
		TicketID: ticketID,
		Reason:   req.Reason,
		Operator: req.Operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened successfully", result)
}

// RateTicket handles POST /maintenance/:id/rate
func (h *MaintenanceHandler) RateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.rateTicketUC.Execute(c.Request.Context(), usecases.RateTicketCommand{
		TicketID: ticketID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rated successfully", result)
}

// DeleteTicket handles DELETE /maintenance/:id
func (h *MaintenanceHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	operator := c.GetString("user_name")
	if operator == "" {
		operator = c.GetString("user_role")
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		Operator: operator,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// GetAuditTrail handles GET /maintenance/:id/logs
func (h *MaintenanceHandler) GetAuditTrail(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Display convention is newest first; pass order=asc for replay order.
	newestFirst := c.DefaultQuery("order", "desc") != "asc"

	result, err := h.getAuditTrailUC.Execute(c.Request.Context(), usecases.GetAuditTrailQuery{
		TicketID:    ticketID,
		NewestFirst: newestFirst,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStats handles GET /maintenance/stats
func (h *MaintenanceHandler) GetStats(c *gin.Context) {
	query, err := parseStatsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
