// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// sqlitePragmas are applied to every sqlite connection.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dbType {
	case TypePostgres:
		conn, err = sql.Open("postgres", url)
	case TypeSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(url))
		if err == nil {
			// SQLite only supports one writer at a time
			conn.SetMaxOpenConns(1)
			conn.SetMaxIdleConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + sqlitePragmas
	}
	return url + "?" + sqlitePragmas
}

// isUniqueViolation reports whether err is a unique constraint failure from
// either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
	}

	return false
}
