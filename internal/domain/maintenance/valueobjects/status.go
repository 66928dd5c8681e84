package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusAssigned:   true,
	StatusProcessing: true,
	StatusCompleted:  true,
	StatusClosed:     true,
}

// statusTransitions is the authoritative transition table of the ticket
// lifecycle. "closed" is terminal; "completed -> processing" (reopen) is the
// single back-edge. "assigned -> assigned" covers re-assignment to a
// different worker before work starts.
var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusAssigned,
		StatusProcessing,
		StatusClosed,
	},
	StatusAssigned: {
		StatusAssigned,
		StatusProcessing,
	},
	StatusProcessing: {
		StatusCompleted,
	},
	StatusCompleted: {
		StatusClosed,
		StatusProcessing,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

func (s Status) IsProcessing() bool {
	return s == StatusProcessing
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
