package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	writer     TicketWriter
	logger     logger.Interface
}

func NewExportTicketsUseCase(ticketRepo ticket.Repository, writer TicketWriter, logger logger.Interface) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		writer:     writer,
		logger:     logger,
	}
}

// Execute writes every stored ticket to w and reports how many were written.
func (uc *ExportTicketsUseCase) Execute(ctx context.Context, w io.Writer) (int, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for export", "error", err)
		return 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	if err := uc.writer.Write(w, tickets); err != nil {
		uc.logger.Errorw("failed to write ticket export", "error", err)
		return 0, fmt.Errorf("failed to write export: %w", err)
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))
	return len(tickets), nil
}
