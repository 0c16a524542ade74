package ingestion

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodeCSV(data []byte) ([]string, []ticket.SourceRow, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("file is empty")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []ticket.SourceRow
	for {
		record, err := r.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := r.FieldPos(0)
		if isBlank(record) {
			continue
		}
		rows = append(rows, ticket.SourceRow{Line: line, Values: record})
	}
	return header, rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}
	return true
}
