package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// SLAThresholdHours is the inclusive upper bound for a ticket to meet its SLA.
	SLAThresholdHours = 24.0

	MaxTicketIDLength = 50
	MaxTextLength     = 255
	MaxSeverityLength = 50
)

// Attributes holds the descriptive, nullable columns of a ticket.
type Attributes struct {
	Subject      *string
	Assignee     *string
	Requester    *string
	Organisation *string
	Severity     *string
}

// Ticket is one imported support ticket. Duration and SLA flag are derived
// once, when the ticket is created from its source row.
type Ticket struct {
	ticketID      string
	attrs         Attributes
	requested     time.Time
	closed        time.Time
	durationHours float64
	slaMet        bool
}

// NewTicket builds a ticket and derives its duration and SLA flag.
// Timestamps are normalised to UTC; a negative duration is kept as is.
func NewTicket(ticketID string, attrs Attributes, requested, closed time.Time) (*Ticket, error) {
	if err := validateID(ticketID); err != nil {
		return nil, err
	}
	if err := validateAttributes(attrs); err != nil {
		return nil, err
	}
	if requested.IsZero() {
		return nil, fmt.Errorf("requested timestamp is required")
	}
	if closed.IsZero() {
		return nil, fmt.Errorf("closed timestamp is required")
	}

	requested = requested.UTC()
	closed = closed.UTC()
	hours := DurationHours(requested, closed)

	return &Ticket{
		ticketID:      ticketID,
		attrs:         attrs,
		requested:     requested,
		closed:        closed,
		durationHours: hours,
		slaMet:        MeetsSLA(hours),
	}, nil
}

// ReconstructTicket restores a ticket from storage without re-deriving anything.
func ReconstructTicket(ticketID string, attrs Attributes, requested, closed time.Time, durationHours float64, slaMet bool) (*Ticket, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	return &Ticket{
		ticketID:      ticketID,
		attrs:         attrs,
		requested:     requested.UTC(),
		closed:        closed.UTC(),
		durationHours: durationHours,
		slaMet:        slaMet,
	}, nil
}

// DurationHours is closed minus requested in fractional hours.
func DurationHours(requested, closed time.Time) float64 {
	return closed.Sub(requested).Hours()
}

// MeetsSLA reports whether a ticket open for hours met the SLA.
func MeetsSLA(hours float64) bool {
	return hours <= SLAThresholdHours
}

func (t *Ticket) TicketID() string       { return t.ticketID }
func (t *Ticket) Attributes() Attributes { return t.attrs }
func (t *Ticket) Subject() *string       { return t.attrs.Subject }
func (t *Ticket) Assignee() *string      { return t.attrs.Assignee }
func (t *Ticket) Requester() *string     { return t.attrs.Requester }
func (t *Ticket) Organisation() *string  { return t.attrs.Organisation }
func (t *Ticket) Severity() *string      { return t.attrs.Severity }
func (t *Ticket) Requested() time.Time   { return t.requested }
func (t *Ticket) Closed() time.Time      { return t.closed }
func (t *Ticket) DurationHours() float64 { return t.durationHours }
func (t *Ticket) SLAMet() bool           { return t.slaMet }

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("ticket ID is required")
	}
	if utf8.RuneCountInString(id) > MaxTicketIDLength {
		return fmt.Errorf("ticket ID exceeds maximum length of %d characters", MaxTicketIDLength)
	}
	return nil
}

func validateAttributes(a Attributes) error {
	fields := []struct {
		name  string
		value *string
		max   int
	}{
		{"subject", a.Subject, MaxTextLength},
		{"assignee", a.Assignee, MaxTextLength},
		{"requester", a.Requester, MaxTextLength},
		{"organisation", a.Organisation, MaxTextLength},
		{"severity", a.Severity, MaxSeverityLength},
	}
	for _, f := range fields {
		if f.value != nil && utf8.RuneCountInString(*f.value) > f.max {
			return fmt.Errorf("%s exceeds maximum length of %d characters", f.name, f.max)
		}
	}
	return nil
}
