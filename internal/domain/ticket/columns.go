package ticket

// Source column headers of the ticket export.
const (
	ColumnTicketID     = "Ticket ID"
	ColumnSubject      = "Subject"
	ColumnAssignee     = "Assignee"
	ColumnRequester    = "Requester"
	ColumnClosed       = "Closed"
	ColumnSeverity     = "Severity"
	ColumnOrganisation = "Organisation"
	ColumnRequested    = "Requested"
)

// RequiredColumns lists the headers an export must contain, in display order.
// Any other column is ignored on import.
var RequiredColumns = []string{
	ColumnTicketID,
	ColumnSubject,
	ColumnAssignee,
	ColumnRequester,
	ColumnClosed,
	ColumnSeverity,
	ColumnOrganisation,
	ColumnRequested,
}

// Derived column headers used by the dashboard and exports.
const (
	ColumnDurationHours = "Ticket duration in hours"
	ColumnSLAMet        = "SLA met"
)

// DisplayColumns is the column order of the dashboard table and exports.
var DisplayColumns = append(append([]string{}, RequiredColumns...), ColumnDurationHours, ColumnSLAMet)
