package candystore

import "reflect"

// Table is the tabular form of a generated dataset: ordered column names and
// one row of values per record. It is the serialization boundary used by the
// CSV and SQLite exporters; the typed record slices remain the primary API.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Tabulate converts a slice of view records into a Table. Columns come from
// the records' `column` struct tags, in field declaration order; fields
// without a tag are skipped.
func Tabulate[T any](records []T) Table {
	recordType := reflect.TypeOf((*T)(nil)).Elem()

	var columns []string
	var fieldIndexes []int
	for i := 0; i < recordType.NumField(); i++ {
		field := recordType.Field(i)
		if tag, ok := field.Tag.Lookup("column"); ok && tag != "" {
			columns = append(columns, tag)
			fieldIndexes = append(fieldIndexes, i)
		}
	}

	rows := make([][]any, 0, len(records))
	for _, record := range records {
		value := reflect.ValueOf(record)
		row := make([]any, len(fieldIndexes))
		for i, fieldIndex := range fieldIndexes {
			row[i] = value.Field(fieldIndex).Interface()
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}
