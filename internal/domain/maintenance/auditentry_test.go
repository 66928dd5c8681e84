package maintenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

func TestNewAuditEntry(t *testing.T) {
	entry, err := NewAuditEntry(42, "admin", vo.ActionAssigned, "assigned to Wang Gong", nil)
	require.NoError(t, err)

	assert.Equal(t, uint(42), entry.TicketID())
	assert.Equal(t, "admin", entry.Operator())
	assert.Equal(t, vo.ActionAssigned, entry.Action())
	assert.NotZero(t, entry.CreatedAt())
	assert.NotNil(t, entry.Images())
}

func TestNewAuditEntry_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		operator string
		action   vo.Action
		desc     string
	}{
		{"zero ticket", 0, "admin", vo.ActionAssigned, "d"},
		{"empty operator", 42, "", vo.ActionAssigned, "d"},
		{"unknown action", 42, "admin", vo.Action("archived"), "d"},
		{"empty description", 42, "admin", vo.ActionAssigned, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewAuditEntry(tt.ticketID, tt.operator, tt.action, tt.desc, nil)
			require.Error(t, err)
			assert.Nil(t, entry)
		})
	}
}

func TestAuditEntry_SetID_WriteOnce(t *testing.T) {
	entry, err := NewAuditEntry(42, "admin", vo.ActionClosed, "ticket closed", nil)
	require.NoError(t, err)

	require.NoError(t, entry.SetID(1))
	require.Error(t, entry.SetID(2))
	assert.Equal(t, uint(1), entry.ID())
}
