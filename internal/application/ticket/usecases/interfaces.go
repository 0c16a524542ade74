package usecases

import (
	"context"
	"io"

	"github.com/ticketsla/ticketsla/internal/application/ticket/dto"
	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

// SourceReader decodes a ticket export file.
type SourceReader interface {
	Read(path string) (*ticket.SourceTable, error)
}

// NoticeRenderer turns operator Markdown into sanitised HTML.
type NoticeRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// TicketWriter serialises a ticket snapshot, e.g. as a spreadsheet.
type TicketWriter interface {
	Write(w io.Writer, tickets []*ticket.Ticket) error
}

type ImportTicketsExecutor interface {
	Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportTicketsResult, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, w io.Writer) (int, error)
}
