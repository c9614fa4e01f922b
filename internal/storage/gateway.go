// Package storage opens connections to the database holding the log table.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"

	"github.com/Ragavendra192/barani-report-system/internal/config"
	"github.com/Ragavendra192/barani-report-system/internal/logger"
)

// ErrUnreachable is returned when a connection cannot be established.
var ErrUnreachable = errors.New("data source unreachable")

// Gateway hands out one connection per request. Nothing is pooled between
// calls to Open.
type Gateway struct {
	driver string
	dsn    string
}

// NewGateway validates the data source and prepares its DSN.
func NewGateway(ds config.DataSource) (*Gateway, error) {
	dsn, err := BuildDSN(ds)
	if err != nil {
		return nil, err
	}
	return &Gateway{driver: ds.Driver, dsn: dsn}, nil
}

// Conn is a single-connection handle owned by one request.
type Conn struct {
	*sql.DB
}

// Open acquires a connection and verifies it answers. The caller must Close it.
func (g *Gateway) Open(ctx context.Context) (*Conn, error) {
	db, err := sql.Open(g.driver, g.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnreachable, g.driver, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrUnreachable, g.driver, err)
	}

	logger.Debug("Data source connection opened", "driver", g.driver)
	return &Conn{DB: db}, nil
}

// With runs fn on a fresh connection and releases it on every exit path.
func (g *Gateway) With(ctx context.Context, fn func(*Conn) error) error {
	conn, err := g.Open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// Ping checks that the data source is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.With(ctx, func(*Conn) error { return nil })
}

// BuildDSN renders the connection string for ds.
func BuildDSN(ds config.DataSource) (string, error) {
	switch ds.Driver {
	case config.DriverSQLServer, config.DriverSQLite, config.DriverPostgres:
	default:
		return "", fmt.Errorf("unsupported database driver %q", ds.Driver)
	}

	if ds.DSN != "" {
		return ds.DSN, nil
	}
	if ds.Database == "" {
		return "", fmt.Errorf("database name is required")
	}

	switch ds.Driver {
	case config.DriverSQLServer:
		// HOST\INSTANCE names a named instance on HOST.
		host, instance, _ := strings.Cut(ds.Server, `\`)
		u := &url.URL{Scheme: "sqlserver", Host: host, Path: instance}
		if ds.User != "" {
			u.User = url.UserPassword(ds.User, ds.Password)
		}
		q := url.Values{}
		q.Set("database", ds.Database)
		u.RawQuery = q.Encode()
		return u.String(), nil

	case config.DriverSQLite:
		params := url.Values{}
		params.Set("mode", "ro")
		params.Set("_busy_timeout", "5000")
		return sqliteURI(ds.Database, params), nil

	default:
		u := &url.URL{Scheme: "postgres", Host: ds.Server, Path: "/" + ds.Database}
		if ds.User != "" {
			u.User = url.UserPassword(ds.User, ds.Password)
		}
		return u.String(), nil
	}
}

// sqlitePathEscaper escapes the characters that end the path part of an
// SQLite file: URI.
var sqlitePathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// sqliteURI renders path as an SQLite file: URI with the given parameters.
func sqliteURI(path string, params url.Values) string {
	u := url.URL{Scheme: "file", Opaque: sqlitePathEscaper.Replace(path), RawQuery: params.Encode()}
	return u.String()
}
