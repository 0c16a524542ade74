package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

func TestTicketMapper_PreservesDerivedFields(t *testing.T) {
	subject := "VPN down"
	requested := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tk, err := ticket.NewTicket("42", ticket.Attributes{Subject: &subject}, requested, requested.Add(26*time.Hour))
	require.NoError(t, err)

	m := NewTicketMapper()
	model := m.ToModel(tk)

	assert.Equal(t, "42", model.TicketID)
	assert.Equal(t, 26.0, model.TicketDurationHours)
	assert.False(t, model.SLAMet)
	assert.Nil(t, model.Assignee)

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, tk.DurationHours(), back.DurationHours())
	assert.Equal(t, tk.SLAMet(), back.SLAMet())
	assert.Equal(t, "VPN down", *back.Subject())
	assert.True(t, requested.Equal(back.Requested()))
}

func TestTicketMapper_NilSafety(t *testing.T) {
	m := NewTicketMapper()

	assert.Nil(t, m.ToModel(nil))
	e, err := m.ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, e)
	assert.Empty(t, m.ToModels([]*ticket.Ticket{nil}))
}
