package ingestion

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

// decodeXLSX reads the first sheet. Cells come back unformatted so dates
// stay as serial numbers instead of locale-dependent strings.
func decodeXLSX(data []byte) ([]string, []ticket.SourceRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	var rows []ticket.SourceRow
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, ticket.SourceRow{Line: i + 2, Values: record})
	}
	return records[0], rows, nil
}

// convertSerialDates rewrites spreadsheet serial numbers in the timestamp
// columns as "YYYY-MM-DD HH:MM:SS". Anything else is left for the importer
// to parse or reject.
func convertSerialDates(table *ticket.SourceTable) {
	index := table.ColumnIndex()
	for _, name := range []string{ticket.ColumnRequested, ticket.ColumnClosed} {
		col, ok := index[name]
		if !ok {
			continue
		}
		for _, row := range table.Rows {
			if col >= len(row.Values) {
				continue
			}
			serial, err := strconv.ParseFloat(strings.TrimSpace(row.Values[col]), 64)
			if err != nil {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				continue
			}
			row.Values[col] = t.Round(time.Second).Format(time.DateTime)
		}
	}
}
