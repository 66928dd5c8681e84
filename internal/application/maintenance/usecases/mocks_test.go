package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/domain/property"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *maintenance.Ticket) error
	UpdateFunc          func(ctx context.Context, t *maintenance.Ticket) error
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error)
	GetByNumberFunc     func(ctx context.Context, number string) (*maintenance.Ticket, error)
	ListFunc            func(ctx context.Context, filter maintenance.TicketFilter) ([]*maintenance.Ticket, int64, error)
	CountByStatusFunc   func(ctx context.Context, filter maintenance.TicketFilter) (map[vo.Status]int64, error)
	CountByPriorityFunc func(ctx context.Context, filter maintenance.TicketFilter) (map[vo.Priority]int64, error)
	CountByCategoryFunc func(ctx context.Context, filter maintenance.TicketFilter, from, to time.Time) (map[vo.Category]int64, error)
	DeleteFunc          func(ctx context.Context, ticketID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *maintenance.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *maintenance.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*maintenance.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter maintenance.TicketFilter) ([]*maintenance.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter maintenance.TicketFilter) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return map[vo.Status]int64{}, nil
}

func (m *mockTicketRepository) CountByPriority(ctx context.Context, filter maintenance.TicketFilter) (map[vo.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx, filter)
	}
	return map[vo.Priority]int64{}, nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, filter maintenance.TicketFilter, from, to time.Time) (map[vo.Category]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, filter, from, to)
	}
	return map[vo.Category]int64{}, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

type mockAuditLogRepository struct {
	AppendFunc           func(ctx context.Context, entry *maintenance.AuditEntry) error
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*maintenance.AuditEntry, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockAuditLogRepository) Append(ctx context.Context, entry *maintenance.AuditEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditLogRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*maintenance.AuditEntry, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAuditLogRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockPropertyRepository struct {
	SaveFunc            func(ctx context.Context, p *property.Property) error
	GetByIDFunc         func(ctx context.Context, propertyID uint) (*property.Property, error)
	ListByCommunityFunc func(ctx context.Context, communityID uint) ([]*property.Property, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) GetByID(ctx context.Context, propertyID uint) (*property.Property, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, propertyID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) ListByCommunity(ctx context.Context, communityID uint) ([]*property.Property, error) {
	if m.ListByCommunityFunc != nil {
		return m.ListByCommunityFunc(ctx, communityID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "BX202601010000", nil
}

// mockTxManager runs the function directly; repositories inside see the same
// context they would in a real transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, t *maintenance.Ticket, kind maintenance.EventKind) error
}

func (m *mockNotifier) Notify(ctx context.Context, t *maintenance.Ticket, kind maintenance.EventKind) error {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, t, kind)
	}
	return nil
}

type mockStatsStore struct {
	KeyFunc func(filter maintenance.TicketFilter, month time.Time) string
	GetFunc func(ctx context.Context, key string, dest any) (bool, error)
	SetFunc func(ctx context.Context, key string, value any) error
}

func (m *mockStatsStore) Key(filter maintenance.TicketFilter, month time.Time) string {
	if m.KeyFunc != nil {
		return m.KeyFunc(filter, month)
	}
	return "stats:test"
}

func (m *mockStatsStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return false, nil
}

func (m *mockStatsStore) Set(ctx context.Context, key string, value any) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

// newPendingTicket builds a persisted-looking ticket in the pending state.
func newPendingTicket(tb testing.TB) *maintenance.Ticket {
	tb.Helper()
	tk, err := maintenance.NewTicket(
		10, 1,
		"Zhang Wei", "13800138000",
		vo.CategoryPlumbing, vo.PriorityHigh,
		"kitchen tap leaking",
		nil,
	)
	if err != nil {
		tb.Fatalf("newPendingTicket: %v", err)
	}
	if err := tk.SetNumber("BX202608310042"); err != nil {
		tb.Fatalf("newPendingTicket: %v", err)
	}
	if err := tk.SetID(42); err != nil {
		tb.Fatalf("newPendingTicket: %v", err)
	}
	return tk
}
