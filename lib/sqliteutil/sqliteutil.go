package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// OpenDB opens a database given either a plain file path or a
// libsql:// url, applies the schema and returns the handle. Schema
// statements must be idempotent (CREATE TABLE IF NOT EXISTS ...).
func OpenDB(schema, target string) (*sql.DB, error) {
	if target == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}

	if strings.HasPrefix(target, "libsql://") ||
		strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") {
		db, err := sql.Open("libsql", target)
		if err != nil {
			return nil, err
		}
		_, err = db.Exec(schema)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	if target != ":memory:" {
		_, statErr := os.Stat(target)
		if os.IsNotExist(statErr) {
			f, err := os.Create(target)
			if err != nil {
				return nil, err
			}
			f.Close()
		}
	}

	db, err := sql.Open("sqlite", target)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}
