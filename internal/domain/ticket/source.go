package ticket

// SourceTable is a ticket export decoded into raw cell text: one header row
// plus data rows, along with the checksum of the file it came from.
type SourceTable struct {
	Source   string
	Checksum string
	Header   []string
	Rows     []SourceRow
}

// SourceRow keeps the 1-based line number of the record in the source file.
type SourceRow struct {
	Line   int
	Values []string
}

// Get returns the cell at index, or "" when the row is short.
func (r SourceRow) Get(index int) string {
	if index < 0 || index >= len(r.Values) {
		return ""
	}
	return r.Values[index]
}

// ColumnIndex maps each header name to its first position.
func (t *SourceTable) ColumnIndex() map[string]int {
	index := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// MissingColumns returns the required headers absent from the table, in
// RequiredColumns order.
func (t *SourceTable) MissingColumns() []string {
	index := t.ColumnIndex()
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
