package sheet

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Row is a single worksheet record, keyed by normalised header column name.
type Row map[string]string

// Table is a worksheet with the first row interpreted as a column header.
type Table struct {
	Header  []string
	Records [][]string
}

// MakeTable builds a header-indexed table from a raw worksheet value range.
// Header keys are normalised, duplicate columns are rejected and entirely
// blank rows are dropped. Short rows are padded with empty cells.
func MakeTable(data *sheets.ValueRange) (*Table, error) {
	if data == nil || len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	// .. build index
	index := map[string]int{}
	header := []string{}
	columns := []int{}
	for i, v := range data.Values[0] {
		k := Normalise(cell(v))
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", cell(v))
		}

		index[k] = i
		header = append(header, clean(cell(v)))
		columns = append(columns, i)
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	// ... records
	records := [][]string{}
	for _, row := range data.Values[1:] {
		if blank(row) {
			continue
		}

		record := make([]string, len(header))
		for i, ix := range columns {
			if ix < len(row) {
				record[i] = clean(cell(row[ix]))
			}
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

// Rows returns the records as header-keyed maps, in sheet order.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.Records))
	for _, record := range t.Records {
		row := Row{}
		for i, h := range t.Header {
			row[Normalise(h)] = record[i]
		}

		rows = append(rows, row)
	}

	return rows
}

// Get returns the cell for a column name, tolerating missing columns.
func (r Row) Get(column string) string {
	return r[Normalise(column)]
}

// Normalise maps a header cell to its canonical column key.
func Normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func cell(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

func blank(row []interface{}) bool {
	for _, v := range row {
		if clean(cell(v)) != "" {
			return false
		}
	}

	return true
}
