package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
)

// MaintenanceMapper handles the conversion between maintenance domain
// entities and persistence models.
type MaintenanceMapper interface {
	ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel

	ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error)

	LogToModel(e *maintenance.AuditEntry) *models.MaintenanceLogModel

	LogToDomain(model *models.MaintenanceLogModel) (*maintenance.AuditEntry, error)
}

type MaintenanceMapperImpl struct{}

func NewMaintenanceMapper() MaintenanceMapper {
	return &MaintenanceMapperImpl{}
}

func (m *MaintenanceMapperImpl) ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel {
	model := &models.MaintenanceTicketModel{
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
		AssignedTo:        t.AssignedTo(),
		ResultDescription: t.ResultDescription(),
		Rating:            t.Rating(),
		Feedback:          t.Feedback(),
		Version:           t.Version(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}

	if len(t.Images()) > 0 {
		imagesJSON, _ := json.Marshal(t.Images())
		model.Images = string(imagesJSON)
	}

	if len(t.ResultImages()) > 0 {
		imagesJSON, _ := json.Marshal(t.ResultImages())
		model.ResultImages = string(imagesJSON)
	}

	model.AssignedAt = timeToMilli(t.AssignedAt())
	model.StartedAt = timeToMilli(t.StartedAt())
	model.CompletedAt = timeToMilli(t.CompletedAt())

	return model
}

func (m *MaintenanceMapperImpl) ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	images, err := unmarshalImages(model.Images, model.ID)
	if err != nil {
		return nil, err
	}
	resultImages, err := unmarshalImages(model.ResultImages, model.ID)
	if err != nil {
		return nil, err
	}

	return maintenance.ReconstructTicket(
		model.ID,
		model.Number,
		model.PropertyID,
		model.CommunityID,
		model.Reporter,
		model.ReporterPhone,
		category,
		priority,
		status,
		model.Description,
		images,
		model.AssignedTo,
		milliToTime(model.AssignedAt),
		milliToTime(model.StartedAt),
		milliToTime(model.CompletedAt),
		model.ResultDescription,
		resultImages,
		model.Rating,
		model.Feedback,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *MaintenanceMapperImpl) LogToModel(e *maintenance.AuditEntry) *models.MaintenanceLogModel {
	model := &models.MaintenanceLogModel{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		Operator:    e.Operator(),
		Action:      e.Action().String(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}

	if len(e.Images()) > 0 {
		imagesJSON, _ := json.Marshal(e.Images())
		model.Images = string(imagesJSON)
	}

	return model
}

func (m *MaintenanceMapperImpl) LogToDomain(model *models.MaintenanceLogModel) (*maintenance.AuditEntry, error) {
	action, err := vo.NewAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("audit entry %d: %w", model.ID, err)
	}

	images, err := unmarshalImages(model.Images, model.ID)
	if err != nil {
		return nil, err
	}

	return maintenance.ReconstructAuditEntry(
		model.ID,
		model.TicketID,
		model.Operator,
		action,
		model.Description,
		images,
		time.UnixMilli(model.CreatedAt),
	)
}

func unmarshalImages(raw string, recordID uint) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images (id=%d): %w", recordID, err)
	}
	return images, nil
}

func timeToMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func milliToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
