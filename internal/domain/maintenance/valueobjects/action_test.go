package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_ResultStatus(t *testing.T) {
	assert.Equal(t, StatusAssigned, ActionAssigned.ResultStatus())
	assert.Equal(t, StatusProcessing, ActionStarted.ResultStatus())
	assert.Equal(t, StatusCompleted, ActionCompleted.ResultStatus())
	assert.Equal(t, StatusClosed, ActionClosed.ResultStatus())
	assert.Equal(t, StatusProcessing, ActionReopened.ResultStatus())
}

func TestNewAction(t *testing.T) {
	a, err := NewAction("reopened")
	require.NoError(t, err)
	assert.Equal(t, ActionReopened, a)

	_, err = NewAction("archived")
	require.Error(t, err)
}

func TestValidateTrail(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		wantErr string
	}{
		{
			name:    "empty trail",
			actions: nil,
		},
		{
			name:    "full happy path",
			actions: []Action{ActionAssigned, ActionStarted, ActionCompleted, ActionClosed},
		},
		{
			name:    "started straight from pending",
			actions: []Action{ActionStarted, ActionCompleted, ActionClosed},
		},
		{
			name:    "withdrawn before any work",
			actions: []Action{ActionClosed},
		},
		{
			name:    "re-assignment before work starts",
			actions: []Action{ActionAssigned, ActionAssigned, ActionStarted, ActionCompleted, ActionClosed},
		},
		{
			name:    "rework cycle",
			actions: []Action{ActionStarted, ActionCompleted, ActionReopened, ActionCompleted, ActionClosed},
		},
		{
			name:    "completed without processing",
			actions: []Action{ActionCompleted},
			wantErr: `entry 0: action "completed" implies transition pending -> completed which is not permitted`,
		},
		{
			name:    "closed mid-processing",
			actions: []Action{ActionStarted, ActionClosed},
			wantErr: `entry 1: action "closed" implies transition processing -> closed which is not permitted`,
		},
		{
			name:    "reopened while still processing",
			actions: []Action{ActionStarted, ActionReopened},
			wantErr: `entry 1: action "reopened" implies transition processing -> processing which is not permitted`,
		},
		{
			name:    "action after close",
			actions: []Action{ActionClosed, ActionAssigned},
			wantErr: `entry 1: action "assigned" implies transition closed -> assigned which is not permitted`,
		},
		{
			name:    "unknown action",
			actions: []Action{Action("archived")},
			wantErr: `entry 0: invalid action "archived"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTrail(tt.actions)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
