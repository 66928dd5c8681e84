package maintenance

import (
	"fmt"
	"time"

	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

// InvalidTransitionError reports a lifecycle operation attempted against a
// ticket whose current status does not satisfy the operation's precondition.
// The current status is carried so callers can tell the user which action is
// actually available next.
type InvalidTransitionError struct {
	Current   vo.Status
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: ticket is in state %q", e.Attempted, e.Current)
}

func newInvalidTransition(current vo.Status, attempted string) error {
	return &InvalidTransitionError{Current: current, Attempted: attempted}
}

// Ticket is a maintenance/service request tied to one property unit. The
// community is derived from the unit at creation time and is never
// independently mutable afterward.
type Ticket struct {
	id                uint
	number            string
	communityID       uint
	propertyID        uint
	reporter          string
	reporterPhone     string
	category          vo.Category
	priority          vo.Priority
	status            vo.Status
	description       string
	images            []string
	assignedTo        string
	assignedAt        *time.Time
	startedAt         *time.Time
	completedAt       *time.Time
	resultDescription string
	resultImages      []string
	rating            *int
	feedback          string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	events            []interface{}
}

func NewTicket(
	propertyID uint,
	communityID uint,
	reporter string,
	reporterPhone string,
	category vo.Category,
	priority vo.Priority,
	description string,
	images []string,
) (*Ticket, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if communityID == 0 {
		return nil, fmt.Errorf("community ID is required")
	}
	if len(reporter) == 0 {
		return nil, fmt.Errorf("reporter is required")
	}
	if len(reporterPhone) == 0 {
		return nil, fmt.Errorf("reporter phone is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now()

	t := &Ticket{
		propertyID:    propertyID,
		communityID:   communityID,
		reporter:      reporter,
		reporterPhone: reporterPhone,
		category:      category,
		priority:      priority,
		status:        vo.StatusPending,
		description:   description,
		images:        images,
		resultImages:  []string{},
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	t.recordEvent(NewTicketCreatedEvent(propertyID, communityID, category.String(), priority.String(), now))

	return t, nil
}

func ReconstructTicket(
	id uint,
	number string,
	propertyID uint,
	communityID uint,
	reporter string,
	reporterPhone string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	description string,
	images []string,
	assignedTo string,
	assignedAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	resultDescription string,
	resultImages []string,
	rating *int,
	feedback string,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if images == nil {
		images = []string{}
	}
	if resultImages == nil {
		resultImages = []string{}
	}

	return &Ticket{
		id:                id,
		number:            number,
		propertyID:        propertyID,
		communityID:       communityID,
		reporter:          reporter,
		reporterPhone:     reporterPhone,
		category:          category,
		priority:          priority,
		status:            status,
		description:       description,
		images:            images,
		assignedTo:        assignedTo,
		assignedAt:        assignedAt,
		startedAt:         startedAt,
		completedAt:       completedAt,
		resultDescription: resultDescription,
		resultImages:      resultImages,
		rating:            rating,
		feedback:          feedback,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Number() string            { return t.number }
func (t *Ticket) PropertyID() uint          { return t.propertyID }
func (t *Ticket) CommunityID() uint         { return t.communityID }
func (t *Ticket) Reporter() string          { return t.reporter }
func (t *Ticket) ReporterPhone() string     { return t.reporterPhone }
func (t *Ticket) Category() vo.Category     { return t.category }
func (t *Ticket) Priority() vo.Priority     { return t.priority }
func (t *Ticket) Status() vo.Status         { return t.status }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) AssignedTo() string        { return t.assignedTo }
func (t *Ticket) AssignedAt() *time.Time    { return t.assignedAt }
func (t *Ticket) StartedAt() *time.Time     { return t.startedAt }
func (t *Ticket) CompletedAt() *time.Time   { return t.completedAt }
func (t *Ticket) ResultDescription() string { return t.resultDescription }
func (t *Ticket) Rating() *int              { return t.rating }
func (t *Ticket) Feedback() string          { return t.feedback }
func (t *Ticket) Version() int              { return t.version }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }

func (t *Ticket) Images() []string {
	imagesCopy := make([]string, len(t.images))
	copy(imagesCopy, t.images)
	return imagesCopy
}

func (t *Ticket) ResultImages() []string {
	imagesCopy := make([]string, len(t.resultImages))
	copy(imagesCopy, t.resultImages)
	return imagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// Assign dispatches the ticket to a worker. Re-assignment before work starts
// overwrites the assignee but keeps the original assignment timestamp.
func (t *Ticket) Assign(assignee string) error {
	if len(assignee) == 0 {
		return fmt.Errorf("assignee is required")
	}
	if !t.status.CanTransitionTo(vo.StatusAssigned) {
		return newInvalidTransition(t.status, "assign")
	}

	t.status = vo.StatusAssigned
	t.assignedTo = assignee
	if t.assignedAt == nil {
		now := time.Now()
		t.assignedAt = &now
	}
	t.touch()
	t.recordEvent(NewTicketAssignedEvent(t.id, t.number, assignee, t.updatedAt))

	return nil
}

// Start moves the ticket into processing. Permitted from pending (self-service
// work without a dispatch step) and from assigned.
func (t *Ticket) Start() error {
	if !t.status.IsPending() && !t.status.IsAssigned() {
		return newInvalidTransition(t.status, "start")
	}

	old := t.status
	t.status = vo.StatusProcessing
	if t.startedAt == nil {
		now := time.Now()
		t.startedAt = &now
	}
	t.touch()
	t.recordStatusChange(old)

	return nil
}

// Complete records the work result. A ticket completed again after a reopen
// gets a fresh completion timestamp; the prior one is overwritten, never
// cleared in between.
func (t *Ticket) Complete(resultDescription string, resultImages []string) error {
	if !t.status.IsProcessing() {
		return newInvalidTransition(t.status, "complete")
	}
	if len(resultDescription) == 0 {
		return fmt.Errorf("result description is required")
	}

	if resultImages == nil {
		resultImages = []string{}
	}

	now := time.Now()
	old := t.status
	t.status = vo.StatusCompleted
	t.completedAt = &now
	t.resultDescription = resultDescription
	t.resultImages = resultImages
	t.touch()
	t.recordStatusChange(old)

	return nil
}

// Close terminates the lifecycle. Valid from completed (normal path) and from
// pending (withdrawn before dispatch).
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return newInvalidTransition(t.status, "close")
	}
	if !t.status.IsCompleted() && !t.status.IsPending() {
		return newInvalidTransition(t.status, "close")
	}

	old := t.status
	t.status = vo.StatusClosed
	t.touch()
	t.recordStatusChange(old)

	return nil
}

// Reopen returns a completed ticket to processing for rework. The completion
// timestamp from the rejected result is kept until a later Complete overwrites
// it.
func (t *Ticket) Reopen() error {
	if !t.status.IsCompleted() {
		return newInvalidTransition(t.status, "reopen")
	}

	old := t.status
	t.status = vo.StatusProcessing
	t.touch()
	t.recordStatusChange(old)

	return nil
}

// Rate records the reporter's evaluation of completed work. It is not a
// status transition and writes no audit entry.
func (t *Ticket) Rate(rating int, feedback string) error {
	if !t.status.IsCompleted() {
		return newInvalidTransition(t.status, "rate")
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	t.rating = &rating
	t.feedback = feedback
	t.touch()

	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}

func (t *Ticket) recordEvent(event interface{}) {
	t.events = append(t.events, event)
}

func (t *Ticket) recordStatusChange(old vo.Status) {
	t.recordEvent(NewTicketStatusChangedEvent(t.id, t.number, old.String(), t.status.String(), t.updatedAt))
}

// Events returns and clears the domain events recorded since the last drain.
// A reconstructed ticket starts with no events; only transitions applied in
// this process record them.
func (t *Ticket) Events() []interface{} {
	events := t.events
	t.events = nil
	return events
}
