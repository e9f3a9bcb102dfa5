// Package service holds the business logic. Services validate input, apply
// the domain rules, and translate storage errors into the apierror taxonomy
// (invalid_input / not_found / conflict / internal) consumed by the handlers.
package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// isNotFound reports whether err is the storage-level "no rows" error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isFKViolation detects SQLite referential-integrity failures. The store's
// foreign keys are the authoritative guard against delete/create races; this
// translates them into a Conflict instead of leaking a 500.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
