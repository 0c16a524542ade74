package dto

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

// TicketRowDTO is one dashboard table row. Absent text columns are "".
type TicketRowDTO struct {
	TicketID      string    `json:"ticket_id"`
	Subject       string    `json:"subject"`
	Assignee      string    `json:"assignee"`
	Requester     string    `json:"requester"`
	Closed        time.Time `json:"closed"`
	Severity      string    `json:"severity"`
	Organisation  string    `json:"organisation"`
	Requested     time.Time `json:"requested"`
	DurationHours float64   `json:"ticket_duration_hours"`
	SLAMet        bool      `json:"sla_met"`
}

type PageDTO struct {
	Number     int  `json:"page"`
	Size       int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	Prev       int  `json:"-"`
	Next       int  `json:"-"`
}

// HistogramBinDTO counts tickets whose duration falls in [Start, End).
type HistogramBinDTO struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Label  string  `json:"label"`
	Met    int     `json:"met"`
	Missed int     `json:"missed"`
	Total  int     `json:"total"`
}

type HistogramDTO struct {
	BinHours float64           `json:"bin_hours"`
	MaxCount int               `json:"max_count"`
	Bins     []HistogramBinDTO `json:"bins"`
}

// SummaryDTO carries SLA totals. ComplianceRate is a percentage, 0 when the
// store is empty.
type SummaryDTO struct {
	Total          int     `json:"total"`
	Met            int     `json:"met"`
	Missed         int     `json:"missed"`
	ComplianceRate float64 `json:"compliance_rate"`
}

type SystemInfoDTO struct {
	Version      string     `json:"version"`
	DeployDate   string     `json:"deploy_date"`
	Environment  string     `json:"environment"`
	Commit       string     `json:"commit"`
	LastImport   string     `json:"last_import"`
	LastImportAt *time.Time `json:"last_import_at,omitempty"`
}

type DashboardDTO struct {
	Title      string         `json:"title"`
	Columns    []string       `json:"columns"`
	Rows       []TicketRowDTO `json:"rows"`
	Page       PageDTO        `json:"pagination"`
	Summary    SummaryDTO     `json:"summary"`
	Histogram  HistogramDTO   `json:"histogram"`
	System     SystemInfoDTO  `json:"system"`
	NoticeHTML string         `json:"notice_html,omitempty"`
}

func ToTicketRowDTO(t *ticket.Ticket) TicketRowDTO {
	return TicketRowDTO{
		TicketID:      t.TicketID(),
		Subject:       deref(t.Subject()),
		Assignee:      deref(t.Assignee()),
		Requester:     deref(t.Requester()),
		Closed:        t.Closed(),
		Severity:      deref(t.Severity()),
		Organisation:  deref(t.Organisation()),
		Requested:     t.Requested(),
		DurationHours: t.DurationHours(),
		SLAMet:        t.SLAMet(),
	}
}

func ToTicketRowDTOs(tickets []*ticket.Ticket) []TicketRowDTO {
	rows := make([]TicketRowDTO, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ToTicketRowDTO(t))
	}
	return rows
}

func ToPageDTO(p utils.Page) PageDTO {
	return PageDTO{
		Number:     p.Number,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		Prev:       p.Prev(),
		Next:       p.Next(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
