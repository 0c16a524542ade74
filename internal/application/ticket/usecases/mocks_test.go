package usecases

import (
	"context"
	"io"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

// mockTicketRepository keeps tickets in memory so import tests can observe
// exactly what was written.
type mockTicketRepository struct {
	tickets []*ticket.Ticket

	CountFunc       func(ctx context.Context) (int64, error)
	CreateBatchFunc func(ctx context.Context, tickets []*ticket.Ticket) error
	ListAllFunc     func(ctx context.Context) ([]*ticket.Ticket, error)
	DeleteAllFunc   func(ctx context.Context) error

	createCalls int
}

func (m *mockTicketRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return int64(len(m.tickets)), nil
}

func (m *mockTicketRepository) CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	m.createCalls++
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tickets)
	}
	m.tickets = append(m.tickets, tickets...)
	return nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return m.tickets, nil
}

func (m *mockTicketRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	m.tickets = nil
	return nil
}

type mockImportMarkerRepository struct {
	markers []*ticket.ImportMarker

	CreateFunc    func(ctx context.Context, marker *ticket.ImportMarker) error
	GetLatestFunc func(ctx context.Context) (*ticket.ImportMarker, error)
}

func (m *mockImportMarkerRepository) Create(ctx context.Context, marker *ticket.ImportMarker) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, marker)
	}
	m.markers = append(m.markers, marker)
	return nil
}

func (m *mockImportMarkerRepository) GetLatest(ctx context.Context) (*ticket.ImportMarker, error) {
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc(ctx)
	}
	if len(m.markers) == 0 {
		return nil, nil
	}
	return m.markers[len(m.markers)-1], nil
}

// mockTransactor restores both in-memory stores when fn fails, like a rollback.
type mockTransactor struct {
	tickets *mockTicketRepository
	markers *mockImportMarkerRepository
	calls   int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	savedTickets := append([]*ticket.Ticket(nil), m.tickets.tickets...)
	savedMarkers := append([]*ticket.ImportMarker(nil), m.markers.markers...)

	if err := fn(ctx); err != nil {
		m.tickets.tickets = savedTickets
		m.markers.markers = savedMarkers
		return err
	}
	return nil
}

type mockSourceReader struct {
	ReadFunc func(path string) (*ticket.SourceTable, error)
	reads    int
}

func (m *mockSourceReader) Read(path string) (*ticket.SourceTable, error) {
	m.reads++
	if m.ReadFunc != nil {
		return m.ReadFunc(path)
	}
	return &ticket.SourceTable{}, nil
}

type mockNoticeRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockNoticeRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockTicketWriter struct {
	WriteFunc func(w io.Writer, tickets []*ticket.Ticket) error
}

func (m *mockTicketWriter) Write(w io.Writer, tickets []*ticket.Ticket) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(w, tickets)
	}
	return nil
}
