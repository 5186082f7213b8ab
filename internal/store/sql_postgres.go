package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avasilcai/school-admin/internal/config"
	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver and verifies it with a ping. Transient connection failures during
// the initial ping are retried with exponential backoff, since the database
// container may still be starting when the service comes up.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient failures
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if pingErr := conn.PingContext(ctx); pingErr != nil {
			if classifier.Classify(pingErr) == Retryable {
				return retry.RetryableError(pingErr)
			}
			return pingErr
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// uniqueViolationConstraint returns the name of the violated unique
// constraint when err is a PostgreSQL unique_violation, or "" otherwise.
// The constraint name is how a failed account insert is attributed to the
// username or the email column.
func uniqueViolationConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName
	}

	return ""
}
