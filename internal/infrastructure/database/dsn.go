package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Dialect names the SQL flavour behind a connection URL. The values match
// goose's dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite3"
)

// ParseURL splits a connection URL into its dialect and the DSN the gorm
// driver expects. Driver suffixes such as "postgresql+psycopg2" are ignored.
//
//	postgres://u:p@host:5432/db     -> postgres, unchanged URL
//	mysql://u:p@host:3306/db?x=y    -> mysql, u:p@tcp(host:3306)/db?x=y&parseTime=true...
//	sqlite:///relative.db           -> sqlite3, relative.db
//	sqlite:////abs/path.db          -> sqlite3, /abs/path.db
//	file::memory:?cache=shared      -> sqlite3, unchanged
func ParseURL(raw string) (Dialect, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty database url")
	}
	if strings.HasPrefix(raw, "file:") || raw == ":memory:" {
		return DialectSQLite, raw, nil
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return "", "", fmt.Errorf("database url %q has no scheme", raw)
	}
	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")

	switch scheme {
	case "postgres", "postgresql":
		return DialectPostgres, "postgres://" + rest, nil
	case "mysql", "mariadb":
		dsn, err := mysqlDSN(rest)
		if err != nil {
			return "", "", err
		}
		return DialectMySQL, dsn, nil
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			path = ":memory:"
		}
		return DialectSQLite, path, nil
	default:
		return "", "", fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

func mysqlDSN(rest string) (string, error) {
	u, err := url.Parse("mysql://" + rest)
	if err != nil {
		return "", fmt.Errorf("invalid mysql url: %w", err)
	}

	host := u.Host
	if u.Port() == "" {
		host += ":3306"
	}

	q := u.Query()
	for k, v := range map[string]string{"parseTime": "true", "loc": "UTC", "charset": "utf8mb4"} {
		if q.Get(k) == "" {
			q.Set(k, v)
		}
	}

	var userinfo string
	if u.User != nil {
		userinfo = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			userinfo += ":" + pw
		}
		userinfo += "@"
	}

	return fmt.Sprintf("%stcp(%s)%s?%s", userinfo, host, u.Path, q.Encode()), nil
}
