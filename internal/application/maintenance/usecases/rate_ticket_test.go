package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
)

func completedTicket(t *testing.T) *maintenance.Ticket {
	t.Helper()
	tk := processingTicket(t)
	require.NoError(t, tk.Complete("replaced the tap cartridge", nil))
	return tk
}

func TestRateTicketUseCase_Execute_Success(t *testing.T) {
	tk := completedTicket(t)

	var updated *maintenance.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *maintenance.Ticket) error {
			updated = tk
			return nil
		},
	}

	useCase := NewRateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RateTicketCommand{
		TicketID: 42,
		Rating:   5,
		Feedback: "quick and clean",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 5, result.Rating)

	require.NotNil(t, updated)
	require.NotNil(t, updated.Rating())
	assert.Equal(t, 5, *updated.Rating())
	assert.Equal(t, "quick and clean", updated.Feedback())
}

func TestRateTicketUseCase_Execute_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		getCalled := false
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
				getCalled = true
				return completedTicket(t), nil
			},
		}

		useCase := NewRateTicketUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), RateTicketCommand{TicketID: 42, Rating: rating})

		require.Error(t, err, "rating %d must be rejected", rating)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, getCalled)
	}
}

func TestRateTicketUseCase_Execute_OnlyCompletedCanBeRated(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *maintenance.Ticket
	}{
		{"pending", func(t *testing.T) *maintenance.Ticket { return newPendingTicket(t) }},
		{"processing", func(t *testing.T) *maintenance.Ticket { return processingTicket(t) }},
		{"closed", func(t *testing.T) *maintenance.Ticket {
			tk := completedTicket(t)
			require.NoError(t, tk.Close())
			return tk
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
					return tt.setup(t), nil
				},
			}

			useCase := NewRateTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), RateTicketCommand{TicketID: 42, Rating: 4})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsConflictError(err))
		})
	}
}
