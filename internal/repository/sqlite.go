package repository

import (
	"database/sql"
	"net/url"
	"strings"

	"modernc.org/sqlite"
)

func init() {
	// Ent's sqlite dialect resolves the driver by the name "sqlite3"; register
	// the pure-Go driver under it so no cgo toolchain is needed.
	sql.Register("sqlite3", &sqlite.Driver{})
}

// defaultPragmas are applied to every sqlite connection unless the DSN already
// carries its own _pragma parameters. WAL plus a busy timeout keeps concurrent
// dispatcher, monitor and worker writes from surfacing SQLITE_BUSY.
var defaultPragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=journal_mode(WAL)",
	"_pragma=busy_timeout(10000)",
}

// SQLiteDSN normalizes a path or file: URL into a DSN for the modernc driver.
func SQLiteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(defaultPragmas, "&")
}

// IsPostgresDSN reports whether the DSN targets a Postgres server rather than
// an embedded sqlite file.
func IsPostgresDSN(dsn string) bool {
	u, err := url.Parse(dsn)
	if err != nil {
		return false
	}
	return u.Scheme == "postgres" || u.Scheme == "postgresql"
}
