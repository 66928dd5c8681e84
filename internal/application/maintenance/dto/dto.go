package dto

import (
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
)

type TicketDTO struct {
	ID                uint       `json:"id"`
	Number            string     `json:"number"`
	CommunityID       uint       `json:"community_id"`
	PropertyID        uint       `json:"property_id"`
	Reporter          string     `json:"reporter"`
	ReporterPhone     string     `json:"reporter_phone"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Description       string     `json:"description"`
	Images            []string   `json:"images"`
	AssignedTo        string     `json:"assigned_to,omitempty"`
	AssignedAt        *time.Time `json:"assigned_at"`
	StartedAt         *time.Time `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	ResultDescription string     `json:"result_description,omitempty"`
	ResultImages      []string   `json:"result_images"`
	Rating            *int       `json:"rating"`
	Feedback          string     `json:"feedback,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type AuditEntryDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Operator    string    `json:"operator"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID         uint   `json:"id"`
	Number     string `json:"number"`
	Reporter   string `json:"reporter"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToTicketDTO(t *maintenance.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                t.ID(),
		Number:            t.Number(),
		CommunityID:       t.CommunityID(),
		PropertyID:        t.PropertyID(),
		Reporter:          t.Reporter(),
		ReporterPhone:     t.ReporterPhone(),
		Category:          t.Category().String(),
		Priority:          t.Priority().String(),
		Status:            t.Status().String(),
		Description:       t.Description(),
		Images:            t.Images(),
		AssignedTo:        t.AssignedTo(),
		AssignedAt:        t.AssignedAt(),
		StartedAt:         t.StartedAt(),
		CompletedAt:       t.CompletedAt(),
		ResultDescription: t.ResultDescription(),
		ResultImages:      t.ResultImages(),
		Rating:            t.Rating(),
		Feedback:          t.Feedback(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func ToAuditEntryDTO(e *maintenance.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		Operator:    e.Operator(),
		Action:      e.Action().String(),
		Description: e.Description(),
		Images:      e.Images(),
		CreatedAt:   e.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *maintenance.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Number:     t.Number(),
		Reporter:   t.Reporter(),
		Category:   t.Category().String(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		AssignedTo: t.AssignedTo(),
		CreatedAt:  t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt().Format(time.RFC3339),
	}
}
