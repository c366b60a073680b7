// Package testsupport holds helpers shared by database-backed tests.
package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

var dbSeq atomic.Int64

// NewSQLiteMemoryDB opens a fresh in-memory SQLite database with foreign keys
// enforced. Each call gets its own namespace so parallel tests never see each
// other's rows, while cache=shared keeps every connection in the pool on the
// same database.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=1", dbSeq.Add(1))
	return sql.Open("sqlite3", dsn)
}
