// Package export writes ticket snapshots to spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

const (
	sheetName       = "Tickets"
	timestampFormat = "yyyy-mm-dd hh:mm:ss"
)

// XLSXExporter streams tickets into a single-sheet workbook.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Write renders tickets, in the given order, as a workbook with a header row
// matching the dashboard columns.
func (e *XLSXExporter) Write(w io.Writer, tickets []*ticket.Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	timeStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(timestampFormat)})
	if err != nil {
		return fmt.Errorf("failed to create timestamp style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}
	if err := sw.SetPanes(&excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	header := make([]interface{}, len(ticket.DisplayColumns))
	for i, name := range ticket.DisplayColumns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: name}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, t := range tickets {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			t.TicketID(),
			deref(t.Subject()),
			deref(t.Assignee()),
			deref(t.Requester()),
			excelize.Cell{StyleID: timeStyle, Value: t.Closed()},
			deref(t.Severity()),
			deref(t.Organisation()),
			excelize.Cell{StyleID: timeStyle, Value: t.Requested()},
			t.DurationHours(),
			t.SLAMet(),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string { return &s }
