package usecases

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

func TestExportTickets(t *testing.T) {
	repo := &mockTicketRepository{tickets: []*ticket.Ticket{
		ticketWithHours(t, "1", 2),
		ticketWithHours(t, "2", 30),
	}}

	var written []*ticket.Ticket
	writer := &mockTicketWriter{WriteFunc: func(w io.Writer, tickets []*ticket.Ticket) error {
		written = tickets
		_, err := w.Write([]byte("xlsx"))
		return err
	}}

	uc := NewExportTicketsUseCase(repo, writer, logger.NewNopLogger())
	var buf bytes.Buffer
	n, err := uc.Execute(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, repo.tickets, written)
	assert.Equal(t, "xlsx", buf.String())
}

func TestExportTickets_WriterError(t *testing.T) {
	writer := &mockTicketWriter{WriteFunc: func(io.Writer, []*ticket.Ticket) error {
		return stderrors.New("stream closed")
	}}
	uc := NewExportTicketsUseCase(&mockTicketRepository{}, writer, logger.NewNopLogger())

	n, err := uc.Execute(context.Background(), io.Discard)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "stream closed")
}
