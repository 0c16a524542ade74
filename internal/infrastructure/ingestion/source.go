// Package ingestion reads ticket exports from disk into a ticket.SourceTable.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
)

type decoder func(data []byte) (header []string, rows []ticket.SourceRow, err error)

var decoders = map[string]decoder{
	".csv":  decodeCSV,
	".xlsx": decodeXLSX,
}

// Supported reports whether path has an extension Open can read.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// FileReader opens ticket exports from the local filesystem.
type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

func (FileReader) Read(path string) (*ticket.SourceTable, error) {
	return Open(path)
}

// Open reads the whole file at path and decodes it by extension.
// Unreadable files yield an IOError.
func Open(path string) (*ticket.SourceTable, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, errors.NewIOError("unsupported source format", fmt.Sprintf("%s (want .csv or .xlsx)", filepath.Base(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("cannot read ticket source", err.Error()).WithCause(err)
	}

	header, rows, err := decode(data)
	if err != nil {
		return nil, errors.NewIOError("cannot decode ticket source", err.Error()).WithCause(err)
	}

	for i := range header {
		header[i] = normalizeHeader(header[i])
	}

	table := &ticket.SourceTable{
		Source:   filepath.Base(path),
		Checksum: Checksum(data),
		Header:   header,
		Rows:     rows,
	}
	if ext == ".xlsx" {
		convertSerialDates(table)
	}
	return table, nil
}

// Checksum is the hex SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func normalizeHeader(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
}
