package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tipresias/candystore"
)

// SQLite writes the table into the named table of a SQLite database file,
// creating the file if needed and replacing the table if it already exists.
// Column types are inferred from the first row's Go values.
func SQLite(path, tableName string, table candystore.Table) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", tableName)); err != nil {
		return fmt.Errorf("drop table %s: %w", tableName, err)
	}
	if _, err := db.Exec(createTableStatement(tableName, table)); err != nil {
		return fmt.Errorf("create table %s: %w", tableName, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertStatement(tableName, table))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range table.Rows {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("insert into %s: %w", tableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", tableName, err)
	}
	return nil
}

func createTableStatement(tableName string, table candystore.Table) string {
	columns := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		columns[i] = fmt.Sprintf("%q %s", column, columnType(table, i))
	}
	return fmt.Sprintf("CREATE TABLE %q (%s)", tableName, strings.Join(columns, ", "))
}

func insertStatement(tableName string, table candystore.Table) string {
	columns := make([]string, len(table.Columns))
	placeholders := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		columns[i] = fmt.Sprintf("%q", column)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func columnType(table candystore.Table, column int) string {
	if len(table.Rows) == 0 {
		return "TEXT"
	}
	switch table.Rows[0][column].(type) {
	case int, int64:
		return "INTEGER"
	case float64:
		return "REAL"
	default:
		return "TEXT"
	}
}
