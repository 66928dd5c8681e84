package valueobjects

import "fmt"

// Action identifies the lifecycle transition that produced an audit entry.
// It is a closed set: audit entries are written only by the lifecycle engine,
// one per successful transition. Rating deliberately records no entry.
type Action string

const (
	ActionAssigned  Action = "assigned"
	ActionStarted   Action = "started processing"
	ActionCompleted Action = "completed"
	ActionClosed    Action = "closed"
	ActionReopened  Action = "reopened"
)

var validActions = map[Action]bool{
	ActionAssigned:  true,
	ActionStarted:   true,
	ActionCompleted: true,
	ActionClosed:    true,
	ActionReopened:  true,
}

// actionResults maps each action to the status a ticket holds after the
// transition it records. Used to replay an audit trail against the
// transition table.
var actionResults = map[Action]Status{
	ActionAssigned:  StatusAssigned,
	ActionStarted:   StatusProcessing,
	ActionCompleted: StatusCompleted,
	ActionClosed:    StatusClosed,
	ActionReopened:  StatusProcessing,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

// ResultStatus returns the lifecycle status the ticket is in once this action
// has been applied.
func (a Action) ResultStatus() Status {
	return actionResults[a]
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid audit action: %s", s)
	}
	return a, nil
}

// ValidateTrail replays a sequence of audit actions (in creation order) from
// the initial pending state and reports the first action whose transition is
// not permitted by the lifecycle transition table.
func ValidateTrail(actions []Action) error {
	current := StatusPending
	for i, a := range actions {
		if !a.IsValid() {
			return fmt.Errorf("entry %d: invalid action %q", i, a)
		}
		next := a.ResultStatus()
		if !current.CanTransitionTo(next) {
			return fmt.Errorf("entry %d: action %q implies transition %s -> %s which is not permitted", i, a, current, next)
		}
		current = next
	}
	return nil
}
