package models

// MaintenanceTicketModel is the persisted shape of a maintenance ticket.
// Version backs the optimistic concurrency check that serializes transitions
// on the same ticket.
type MaintenanceTicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	Number            string `gorm:"uniqueIndex;size:50;not null"`
	CommunityID       uint   `gorm:"not null;index"`
	PropertyID        uint   `gorm:"not null;index"`
	Reporter          string `gorm:"size:50;not null"`
	ReporterPhone     string `gorm:"size:20;not null"`
	Category          string `gorm:"size:20;not null;index"`
	Priority          string `gorm:"size:20;not null;index"`
	Status            string `gorm:"size:20;not null;index"`
	Description       string `gorm:"type:text;not null"`
	Images            string `gorm:"type:json"`
	AssignedTo        string `gorm:"size:50"`
	AssignedAt        *int64
	StartedAt         *int64
	CompletedAt       *int64
	ResultDescription string `gorm:"type:text"`
	ResultImages      string `gorm:"type:json"`
	Rating            *int
	Feedback          string `gorm:"type:text"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MaintenanceTicketModel) TableName() string {
	return "maintenance_tickets"
}

// MaintenanceLogModel is one append-only audit entry. Rows are never updated
// or deleted while their ticket exists; deleting a ticket removes its log.
type MaintenanceLogModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Operator    string `gorm:"size:50;not null"`
	Action      string `gorm:"size:50;not null;index"`
	Description string `gorm:"type:text;not null"`
	Images      string `gorm:"type:json"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MaintenanceLogModel) TableName() string {
	return "maintenance_logs"
}
