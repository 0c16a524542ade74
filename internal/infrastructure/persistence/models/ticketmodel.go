package models

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

// TicketModel represents the database persistence model for imported tickets
type TicketModel struct {
	TicketID            string    `gorm:"column:ticket_id;primaryKey;size:50"`
	Subject             *string   `gorm:"column:subject;size:255"`
	Assignee            *string   `gorm:"column:assignee;size:255"`
	Requester           *string   `gorm:"column:requester;size:255"`
	Organisation        *string   `gorm:"column:organisation;size:255"`
	Severity            *string   `gorm:"column:severity;size:50"`
	Closed              time.Time `gorm:"column:closed;not null"`
	Requested           time.Time `gorm:"column:requested;not null;index:idx_tickets_requested"`
	TicketDurationHours float64   `gorm:"column:ticket_duration_hours;not null"`
	SLAMet              bool      `gorm:"column:sla_met;not null"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}
