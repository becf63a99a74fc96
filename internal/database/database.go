package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/segyhp/gym-backoffice/internal/config"
)

// Connect opens the PostgreSQL pool and verifies it with a ping. Sessions run
// in loc so timestamps come back in the business time zone.
func Connect(ctx context.Context, cfg config.DatabaseConfig, loc *time.Location) (*sqlx.DB, error) {
	dsn, err := withTimeZone(cfg.URL, loc)
	if err != nil {
		return nil, fmt.Errorf("database url: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// withTimeZone adds a timezone runtime parameter to a URL or key=value DSN.
// An explicit timezone in the DSN wins.
func withTimeZone(dsn string, loc *time.Location) (string, error) {
	if loc == nil {
		return dsn, nil
	}
	zone := loc.String()

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", err
		}
		q := u.Query()
		for key := range q {
			if strings.EqualFold(key, "timezone") {
				return dsn, nil
			}
		}
		q.Set("timezone", zone)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	for _, field := range strings.Fields(dsn) {
		if key, _, ok := strings.Cut(field, "="); ok && strings.EqualFold(key, "timezone") {
			return dsn, nil
		}
	}
	return strings.TrimSpace(dsn + " timezone='" + zone + "'"), nil
}
