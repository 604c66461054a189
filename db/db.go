package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	sqltrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/database/sql"

	"github.com/openmarket/markethub/lib/service"
)

// Open connects to the Postgres DSN in the config and returns a bun handle
// with the configured pool limits and the BUNDEBUG query hook attached.
func Open(config *service.Config) (*bun.DB, error) {
	dsn := config.DatabaseUri
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil, fmt.Errorf("unsupported database uri %q, expected a postgres:// or postgresql:// DSN", dsn)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	var sqldb *sql.DB
	if config.DatadogAgentUrl != "" {
		// route query traces through the Datadog-wrapped driver
		sqltrace.Register("postgres", pgdriver.Driver{}, sqltrace.WithServiceName("markethub"))
		sqldb = sqltrace.OpenDB(connector)
	} else {
		sqldb = sql.OpenDB(connector)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.SetMaxOpenConns(config.DatabaseMaxConns)
	db.SetMaxIdleConns(config.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(config.DatabaseConnMaxLifetime) * time.Second)

	// BUNDEBUG=1 logs failed queries, BUNDEBUG=2 logs every query
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(false),
		bundebug.FromEnv("BUNDEBUG"),
	))

	return db, nil
}
