package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
)

func TestCloseTicketUseCase_Execute_FromCompleted(t *testing.T) {
	tk := processingTicket(t)
	require.NoError(t, tk.Complete("done", nil))

	var appended *maintenance.AuditEntry
	var notifiedKind maintenance.EventKind

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return tk, nil
		},
	}
	mockAudit := &mockAuditLogRepository{
		AppendFunc: func(ctx context.Context, entry *maintenance.AuditEntry) error {
			appended = entry
			return nil
		},
	}
	mockNotify := &mockNotifier{
		NotifyFunc: func(ctx context.Context, tk *maintenance.Ticket, kind maintenance.EventKind) error {
			notifiedKind = kind
			return nil
		},
	}

	useCase := NewCloseTicketUseCase(mockRepo, mockAudit, &mockTxManager{}, mockNotify, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseTicketCommand{TicketID: 42, Operator: "admin"})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusCompleted.String(), result.OldStatus)
	assert.Equal(t, vo.StatusClosed.String(), result.NewStatus)

	require.NotNil(t, appended)
	assert.Equal(t, vo.ActionClosed, appended.Action())
	assert.Equal(t, maintenance.EventClosed, notifiedKind)
}

func TestCloseTicketUseCase_Execute_FromPendingWithdrawal(t *testing.T) {
	tk := newPendingTicket(t)

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return tk, nil
		},
	}

	useCase := NewCloseTicketUseCase(mockRepo, &mockAuditLogRepository{}, &mockTxManager{}, &mockNotifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseTicketCommand{
		TicketID: 42,
		Reason:   "reporter withdrew the request",
		Operator: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusPending.String(), result.OldStatus)
	assert.Equal(t, vo.StatusClosed.String(), result.NewStatus)
}

func TestCloseTicketUseCase_Execute_InvalidStates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *maintenance.Ticket
	}{
		{"assigned", func(t *testing.T) *maintenance.Ticket {
			tk := newPendingTicket(t)
			require.NoError(t, tk.Assign("Wang Gong"))
			return tk
		}},
		{"processing", func(t *testing.T) *maintenance.Ticket { return processingTicket(t) }},
		{"already closed", func(t *testing.T) *maintenance.Ticket {
			tk := newPendingTicket(t)
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

			useCase := NewCloseTicketUseCase(mockRepo, &mockAuditLogRepository{}, &mockTxManager{}, &mockNotifier{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), CloseTicketCommand{TicketID: 42, Operator: "admin"})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsConflictError(err))
		})
	}
}
