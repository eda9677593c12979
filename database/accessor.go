package database

import (
	"context"
	"errors"
	"log"
	"time"

	"showcase/core"

	"gorm.io/gorm"
)

// ErrUnavailable is returned by every Accessor operation when no database
// handle was supplied.
var ErrUnavailable = errors.New("database unavailable")

// Accessor is the thin statement-execution wrapper the demo pages talk to.
// It holds an optional database handle and delegates directly to the driver's
// prepared-statement API: no pooling, transactions, caching or retries of its
// own. Driver failures are logged and propagated unchanged.
type Accessor struct {
	db *gorm.DB
}

// NewAccessor wraps the supplied handle. A nil handle yields an accessor whose
// operations all fail with ErrUnavailable; page handlers use that to fall back
// to safe defaults instead of crashing.
func NewAccessor(db *gorm.DB) *Accessor {
	return &Accessor{db: db}
}

// Available reports whether a database handle was supplied.
func (a *Accessor) Available() bool {
	return a != nil && a.db != nil
}

// Run executes a statement with positional parameters, expecting no result rows.
func (a *Accessor) Run(query string, args ...any) error {
	if !a.Available() {
		return ErrUnavailable
	}

	if err := a.db.Exec(query, args...).Error; err != nil {
		log.Printf("Database statement failed: %v", err)
		core.LogErrorWithDetail("database", "statement failed", err.Error())
		return err
	}
	return nil
}

// All runs a query and scans every result row into dest (a pointer to a slice).
func (a *Accessor) All(dest any, query string, args ...any) error {
	if !a.Available() {
		return ErrUnavailable
	}

	if err := a.db.Raw(query, args...).Scan(dest).Error; err != nil {
		log.Printf("Database query failed: %v", err)
		core.LogErrorWithDetail("database", "query failed", err.Error())
		return err
	}
	return nil
}

// First runs a query and scans the first result row into dest (a pointer to a
// struct). found is false when the query matched no rows.
func (a *Accessor) First(dest any, query string, args ...any) (found bool, err error) {
	if !a.Available() {
		return false, ErrUnavailable
	}

	tx := a.db.Raw(query, args...).Scan(dest)
	if tx.Error != nil {
		log.Printf("Database query failed: %v", tx.Error)
		core.LogErrorWithDetail("database", "query failed", tx.Error.Error())
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Ping checks database connectivity with a short deadline.
func (a *Accessor) Ping(ctx context.Context) bool {
	if !a.Available() {
		return false
	}

	sqlDB, err := a.db.DB()
	if err != nil {
		return false
	}

	if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
	}

	return sqlDB.PingContext(ctx) == nil
}
