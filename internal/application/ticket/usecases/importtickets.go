package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/db"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type ImportTicketsCommand struct {
	Path string
	// Force replaces existing tickets instead of leaving a populated store alone.
	Force bool
}

type ImportTicketsResult struct {
	Imported int
	Skipped  bool
	Stale    bool
	Source   string
	Checksum string
}

type ImportTicketsUseCase struct {
	ticketRepo ticket.Repository
	markerRepo ticket.ImportMarkerRepository
	txManager  db.Transactor
	reader     SourceReader
	logger     logger.Interface
}

func NewImportTicketsUseCase(
	ticketRepo ticket.Repository,
	markerRepo ticket.ImportMarkerRepository,
	txManager db.Transactor,
	reader SourceReader,
	logger logger.Interface,
) *ImportTicketsUseCase {
	return &ImportTicketsUseCase{
		ticketRepo: ticketRepo,
		markerRepo: markerRepo,
		txManager:  txManager,
		reader:     reader,
		logger:     logger,
	}
}

// Execute loads the export at cmd.Path into an empty store. Any bad row
// aborts the whole import before anything is written.
func (uc *ImportTicketsUseCase) Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportTicketsResult, error) {
	if strings.TrimSpace(cmd.Path) == "" {
		return nil, errors.NewValidationError("ticket source path is required")
	}

	existing, err := uc.ticketRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	if existing > 0 && !cmd.Force {
		return uc.skip(ctx, cmd.Path, existing)
	}

	table, err := uc.reader.Read(cmd.Path)
	if err != nil {
		uc.logger.Errorw("failed to read ticket source", "path", cmd.Path, "error", err)
		return nil, err
	}

	tickets, err := parseTickets(table)
	if err != nil {
		uc.logger.Errorw("ticket source rejected", "source", table.Source, "error", err)
		return nil, err
	}

	marker, err := ticket.NewImportMarker(table.Source, table.Checksum, len(tickets))
	if err != nil {
		return nil, fmt.Errorf("failed to create import marker: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if existing > 0 {
			if err := uc.ticketRepo.DeleteAll(txCtx); err != nil {
				return err
			}
		}
		if len(tickets) > 0 {
			if err := uc.ticketRepo.CreateBatch(txCtx, tickets); err != nil {
				return err
			}
		}
		return uc.markerRepo.Create(txCtx, marker)
	})
	if err != nil {
		uc.logger.Errorw("failed to store tickets", "source", table.Source, "error", err)
		return nil, fmt.Errorf("failed to store tickets: %w", err)
	}

	uc.logger.Infow("tickets imported",
		"source", table.Source,
		"rows", len(tickets),
		"replaced", existing,
		"checksum", table.Checksum)

	return &ImportTicketsResult{
		Imported: len(tickets),
		Source:   table.Source,
		Checksum: table.Checksum,
	}, nil
}

// skip leaves a populated store untouched. The source is only read to tell
// whether it changed since the last import; a missing file is not an error here.
func (uc *ImportTicketsUseCase) skip(ctx context.Context, path string, existing int64) (*ImportTicketsResult, error) {
	result := &ImportTicketsResult{Skipped: true}

	table, err := uc.reader.Read(path)
	if err != nil {
		uc.logger.Warnw("ticket store already populated; source unreadable", "path", path, "tickets", existing, "error", err)
		return result, nil
	}
	result.Source = table.Source
	result.Checksum = table.Checksum

	marker, err := uc.markerRepo.GetLatest(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load import marker", "error", err)
		return nil, fmt.Errorf("failed to load import marker: %w", err)
	}

	if marker != nil && !marker.Matches(table.Checksum) {
		result.Stale = true
		uc.logger.Warnw("ticket source changed since last import; run import --force to reload",
			"source", table.Source,
			"imported_at", marker.ImportedAt,
			"imported_checksum", marker.ContentSHA256,
			"current_checksum", table.Checksum)
		return result, nil
	}

	uc.logger.Infow("ticket store already populated, skipping import", "tickets", existing, "source", table.Source)
	return result, nil
}

func parseTickets(table *ticket.SourceTable) ([]*ticket.Ticket, error) {
	if missing := table.MissingColumns(); len(missing) > 0 {
		return nil, errors.NewSchemaMismatchError("ticket source is missing required columns", strings.Join(missing, ", "))
	}

	index := table.ColumnIndex()
	cell := func(row ticket.SourceRow, column string) string {
		return row.Get(index[column])
	}

	tickets := make([]*ticket.Ticket, 0, len(table.Rows))
	seen := make(map[string]int, len(table.Rows))

	for _, row := range table.Rows {
		id := strings.TrimSpace(cell(row, ticket.ColumnTicketID))
		if id == "" {
			return nil, errors.NewParseError("empty Ticket ID", fmt.Sprintf("line %d", row.Line))
		}
		if first, dup := seen[id]; dup {
			return nil, errors.NewParseError("duplicate Ticket ID",
				fmt.Sprintf("line %d: %q already seen on line %d", row.Line, id, first))
		}
		seen[id] = row.Line

		requested, err := parseTimestamp(cell(row, ticket.ColumnRequested))
		if err != nil {
			return nil, timestampError(row, ticket.ColumnRequested, cell(row, ticket.ColumnRequested))
		}
		closed, err := parseTimestamp(cell(row, ticket.ColumnClosed))
		if err != nil {
			return nil, timestampError(row, ticket.ColumnClosed, cell(row, ticket.ColumnClosed))
		}

		t, err := ticket.NewTicket(id, ticket.Attributes{
			Subject:      optional(cell(row, ticket.ColumnSubject)),
			Assignee:     optional(cell(row, ticket.ColumnAssignee)),
			Requester:    optional(cell(row, ticket.ColumnRequester)),
			Organisation: optional(cell(row, ticket.ColumnOrganisation)),
			Severity:     optional(cell(row, ticket.ColumnSeverity)),
		}, requested, closed)
		if err != nil {
			return nil, errors.NewParseError("invalid ticket row", fmt.Sprintf("line %d: %v", row.Line, err))
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func timestampError(row ticket.SourceRow, column, raw string) error {
	return errors.NewParseError(fmt.Sprintf("invalid %s timestamp", column),
		fmt.Sprintf("line %d: %q", row.Line, raw))
}

// optional maps an empty cell to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
