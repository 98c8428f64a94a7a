package export

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aceteam-ai/fiolog/internal/fio"
	_ "modernc.org/sqlite"
)

// DefaultSQLTable is the table that receives the wide rows.
const DefaultSQLTable = "fio_results"

// SQLiteWriter stores the table in a SQLite database, one REAL column per
// wide-table column keyed by row_num. An existing table of the same name
// is replaced.
type SQLiteWriter struct {
	Table string
}

// WriteTable opens (or creates) the database at path and writes t.
func (w *SQLiteWriter) WriteTable(path string, t *fio.Table) error {
	name := w.Table
	if name == "" {
		name = DefaultSQLTable
	}

	if err := checkColumnNames(t); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite export: open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite export: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(name)); err != nil {
		return fmt.Errorf("sqlite export: drop table: %w", err)
	}
	if _, err := tx.Exec(createTableSQL(name, t)); err != nil {
		return fmt.Errorf("sqlite export: create table: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL(name, t))
	if err != nil {
		return fmt.Errorf("sqlite export: prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns)+1)
	for i, n := range t.RowNums {
		for j, v := range t.Row(i) {
			args[j] = v
		}
		args[0] = n
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("sqlite export: insert row %d: %w", n, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite export: commit: %w", err)
	}
	return nil
}

func createTableSQL(name string, t *fio.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n    %s INTEGER PRIMARY KEY", quoteIdent(name), quoteIdent(fio.RowNumColumn))
	for _, c := range t.Columns {
		fmt.Fprintf(&b, ",\n    %s REAL NOT NULL DEFAULT 0", quoteIdent(c.Name()))
	}
	b.WriteString("\n)")
	return b.String()
}

func insertSQL(name string, t *fio.Table) string {
	cols := make([]string, 0, len(t.Columns)+1)
	for _, h := range t.Header() {
		cols = append(cols, quoteIdent(h))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(name), strings.Join(cols, ", "), placeholders)
}

// checkColumnNames rejects tables whose column names collide once case is
// folded, since SQLite identifiers are case-insensitive.
func checkColumnNames(t *fio.Table) error {
	seen := make(map[string]string, len(t.Columns)+1)
	for _, h := range t.Header() {
		key := strings.ToLower(h)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("sqlite export: columns %q and %q differ only by case; rename the log files or use another format", prev, h)
		}
		seen[key] = h
	}
	return nil
}

// quoteIdent quotes an SQLite identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
