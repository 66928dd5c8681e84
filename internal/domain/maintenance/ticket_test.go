package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(10, 1, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "kitchen tap leaking", nil)
	require.NoError(t, err)
	return tk
}

func TestNewTicket_ValidInput(t *testing.T) {
	tk := newValidTicket(t)

	assert.Equal(t, uint(10), tk.PropertyID())
	assert.Equal(t, uint(1), tk.CommunityID())
	assert.True(t, tk.Status().IsPending())
	assert.Equal(t, 1, tk.Version())
	assert.NotNil(t, tk.Images())
	assert.Empty(t, tk.Images())
	assert.Nil(t, tk.AssignedAt())
	assert.Nil(t, tk.StartedAt())
	assert.Nil(t, tk.CompletedAt())
	assert.Nil(t, tk.Rating())
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*Ticket, error)
	}{
		{"zero property", func() (*Ticket, error) {
			return NewTicket(0, 1, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "desc", nil)
		}},
		{"zero community", func() (*Ticket, error) {
			return NewTicket(10, 0, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "desc", nil)
		}},
		{"empty reporter", func() (*Ticket, error) {
			return NewTicket(10, 1, "", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "desc", nil)
		}},
		{"empty phone", func() (*Ticket, error) {
			return NewTicket(10, 1, "Zhang Wei", "", vo.CategoryPlumbing, vo.PriorityHigh, "desc", nil)
		}},
		{"bad category", func() (*Ticket, error) {
			return NewTicket(10, 1, "Zhang Wei", "13800138000", vo.Category("gardening"), vo.PriorityHigh, "desc", nil)
		}},
		{"bad priority", func() (*Ticket, error) {
			return NewTicket(10, 1, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.Priority("urgent"), "desc", nil)
		}},
		{"empty description", func() (*Ticket, error) {
			return NewTicket(10, 1, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "", nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := tt.fn()
			require.Error(t, err)
			assert.Nil(t, tk)
		})
	}
}

func TestTicket_SetNumber_WriteOnce(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetNumber("BX202608310001"))
	err := tk.SetNumber("BX202608310002")
	require.Error(t, err)
	assert.Equal(t, "BX202608310001", tk.Number())
}

func TestTicket_Assign(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.Assign("Wang Gong"))
	assert.True(t, tk.Status().IsAssigned())
	assert.Equal(t, "Wang Gong", tk.AssignedTo())
	require.NotNil(t, tk.AssignedAt())
	assert.Equal(t, 2, tk.Version())
}

func TestTicket_Assign_ReassignOverwritesAssigneeOnly(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Assign("Wang Gong"))
	first := *tk.AssignedAt()

	require.NoError(t, tk.Assign("Liu Gong"))
	assert.Equal(t, "Liu Gong", tk.AssignedTo())
	assert.Equal(t, first, *tk.AssignedAt())
}

func TestTicket_Assign_InvalidStates(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())

	err := tk.Assign("Wang Gong")
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, vo.StatusProcessing, invalid.Current)
}

func TestTicket_Start(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Start())
		assert.True(t, tk.Status().IsProcessing())
		assert.NotNil(t, tk.StartedAt())
	})

	t.Run("from assigned", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Assign("Wang Gong"))
		require.NoError(t, tk.Start())
		assert.True(t, tk.Status().IsProcessing())
	})

	t.Run("from completed rejected", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Start())
		require.NoError(t, tk.Complete("done", nil))
		require.Error(t, tk.Start())
	})
}

func TestTicket_Complete(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())

	require.NoError(t, tk.Complete("replaced the tap cartridge", []string{"after.jpg"}))
	assert.True(t, tk.Status().IsCompleted())
	require.NotNil(t, tk.CompletedAt())
	assert.Equal(t, "replaced the tap cartridge", tk.ResultDescription())
	assert.Equal(t, []string{"after.jpg"}, tk.ResultImages())
}

func TestTicket_Complete_RequiresResultDescription(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())

	err := tk.Complete("", nil)
	require.Error(t, err)
	assert.True(t, tk.Status().IsProcessing(), "failed completion must not change state")
}

func TestTicket_Close(t *testing.T) {
	t.Run("from completed", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Start())
		require.NoError(t, tk.Complete("done", nil))
		require.NoError(t, tk.Close())
		assert.True(t, tk.Status().IsClosed())
	})

	t.Run("from pending", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Close())
		assert.True(t, tk.Status().IsClosed())
	})

	t.Run("from processing rejected", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Start())
		require.Error(t, tk.Close())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Close())
		require.Error(t, tk.Close())
		require.Error(t, tk.Start())
		require.Error(t, tk.Assign("Wang Gong"))
		require.Error(t, tk.Reopen())
	})
}

func TestTicket_Reopen_KeepsCompletionTimestamp(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())
	require.NoError(t, tk.Complete("first attempt", nil))
	first := *tk.CompletedAt()

	require.NoError(t, tk.Reopen())
	assert.True(t, tk.Status().IsProcessing())
	require.NotNil(t, tk.CompletedAt())
	assert.Equal(t, first, *tk.CompletedAt())

	time.Sleep(time.Millisecond)
	require.NoError(t, tk.Complete("second attempt", nil))
	assert.True(t, tk.CompletedAt().After(first))
	assert.Equal(t, "second attempt", tk.ResultDescription())
}

func TestTicket_Reopen_KeepsStartedAt(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())
	started := *tk.StartedAt()
	require.NoError(t, tk.Complete("done", nil))

	require.NoError(t, tk.Reopen())
	assert.Equal(t, started, *tk.StartedAt())
}

func TestTicket_Rate(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())
	require.NoError(t, tk.Complete("done", nil))

	require.NoError(t, tk.Rate(5, "quick and clean"))
	require.NotNil(t, tk.Rating())
	assert.Equal(t, 5, *tk.Rating())
	assert.Equal(t, "quick and clean", tk.Feedback())
}

func TestTicket_Rate_Bounds(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.Start())
	require.NoError(t, tk.Complete("done", nil))

	for _, rating := range []int{0, -3, 6} {
		require.Error(t, tk.Rate(rating, ""), "rating %d", rating)
		assert.Nil(t, tk.Rating())
	}

	require.NoError(t, tk.Rate(1, ""))
	require.NoError(t, tk.Rate(4, "revised"), "re-rating overwrites")
	assert.Equal(t, 4, *tk.Rating())
}

func TestTicket_Rate_OnlyWhenCompleted(t *testing.T) {
	tk := newValidTicket(t)
	require.Error(t, tk.Rate(5, ""))

	require.NoError(t, tk.Start())
	require.Error(t, tk.Rate(5, ""))

	require.NoError(t, tk.Complete("done", nil))
	require.NoError(t, tk.Close())
	require.Error(t, tk.Rate(5, ""), "closed tickets can no longer be rated")
}

func TestTicket_VersionIncrementsOnEveryMutation(t *testing.T) {
	tk := newValidTicket(t)
	assert.Equal(t, 1, tk.Version())

	require.NoError(t, tk.Assign("Wang Gong"))
	require.NoError(t, tk.Start())
	require.NoError(t, tk.Complete("done", nil))
	require.NoError(t, tk.Rate(5, ""))
	require.NoError(t, tk.Close())
	assert.Equal(t, 6, tk.Version())
}

func TestReconstructTicket_RoundTrip(t *testing.T) {
	now := time.Now()
	rating := 4
	tk, err := ReconstructTicket(
		7, "BX202608310042", 10, 1,
		"Zhang Wei", "13800138000",
		vo.CategoryElectrical, vo.PriorityMedium, vo.StatusCompleted,
		"hallway light flickers",
		[]string{"a.jpg"},
		"Wang Gong", &now, &now, &now,
		"swapped the ballast", []string{"b.jpg"},
		&rating, "great",
		5, now, now,
	)
	require.NoError(t, err)

	assert.Equal(t, uint(7), tk.ID())
	assert.Equal(t, "BX202608310042", tk.Number())
	assert.True(t, tk.Status().IsCompleted())
	assert.Equal(t, 5, tk.Version())
	assert.Equal(t, 4, *tk.Rating())
}

func TestReconstructTicket_Invalid(t *testing.T) {
	now := time.Now()

	_, err := ReconstructTicket(
		0, "BX202608310042", 10, 1, "r", "p",
		vo.CategoryOther, vo.PriorityLow, vo.StatusPending,
		"d", nil, "", nil, nil, nil, "", nil, nil, "", 1, now, now,
	)
	require.Error(t, err)

	_, err = ReconstructTicket(
		7, "", 10, 1, "r", "p",
		vo.CategoryOther, vo.PriorityLow, vo.StatusPending,
		"d", nil, "", nil, nil, nil, "", nil, nil, "", 1, now, now,
	)
	require.Error(t, err)

	_, err = ReconstructTicket(
		7, "BX202608310042", 10, 1, "r", "p",
		vo.CategoryOther, vo.PriorityLow, vo.Status("limbo"),
		"d", nil, "", nil, nil, nil, "", nil, nil, "", 1, now, now,
	)
	require.Error(t, err)
}

func TestTicket_ImagesAreCopied(t *testing.T) {
	tk, err := NewTicket(10, 1, "Zhang Wei", "13800138000", vo.CategoryPlumbing, vo.PriorityHigh, "desc", []string{"a.jpg"})
	require.NoError(t, err)

	images := tk.Images()
	images[0] = "mutated.jpg"
	assert.Equal(t, []string{"a.jpg"}, tk.Images())
}

func TestTicket_DomainEvents(t *testing.T) {
	t.Run("creation records a created event", func(t *testing.T) {
		tk := newValidTicket(t)

		events := tk.Events()
		require.Len(t, events, 1)
		created, ok := events[0].(TicketCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, uint(10), created.PropertyID)
		assert.Equal(t, uint(1), created.CommunityID)
		assert.Equal(t, vo.PriorityHigh.String(), created.Priority)
	})

	t.Run("events drain on read", func(t *testing.T) {
		tk := newValidTicket(t)

		require.Len(t, tk.Events(), 1)
		assert.Empty(t, tk.Events())
	})

	t.Run("transitions record their events", func(t *testing.T) {
		tk := newValidTicket(t)
		tk.Events()

		require.NoError(t, tk.Assign("Wang Gong"))
		events := tk.Events()
		require.Len(t, events, 1)
		assigned, ok := events[0].(TicketAssignedEvent)
		require.True(t, ok)
		assert.Equal(t, "Wang Gong", assigned.Assignee)

		require.NoError(t, tk.Start())
		require.NoError(t, tk.Complete("fixed", nil))
		events = tk.Events()
		require.Len(t, events, 2)
		started, ok := events[0].(TicketStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, vo.StatusAssigned.String(), started.OldStatus)
		assert.Equal(t, vo.StatusProcessing.String(), started.NewStatus)
		completed, ok := events[1].(TicketStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, vo.StatusCompleted.String(), completed.NewStatus)

		require.NoError(t, tk.Reopen())
		require.NoError(t, tk.Complete("refixed", nil))
		require.NoError(t, tk.Close())
		events = tk.Events()
		require.Len(t, events, 3)
		closed, ok := events[2].(TicketStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, vo.StatusClosed.String(), closed.NewStatus)
	})

	t.Run("rating records no event", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.Start())
		require.NoError(t, tk.Complete("fixed", nil))
		tk.Events()

		require.NoError(t, tk.Rate(5, "quick work"))
		assert.Empty(t, tk.Events())
	})

	t.Run("reconstruction records no event", func(t *testing.T) {
		now := time.Now()
		tk, err := ReconstructTicket(
			7, "BX202608310042", 10, 1, "Zhang Wei", "13800138000",
			vo.CategoryPlumbing, vo.PriorityHigh, vo.StatusPending,
			"kitchen tap leaking", nil, "", nil, nil, nil, "", nil, nil, "", 1, now, now,
		)
		require.NoError(t, err)
		assert.Empty(t, tk.Events())
	})
}
