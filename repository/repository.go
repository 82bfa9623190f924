// Package repository persists restaurants, users and the booking ledger with gorm.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == "postgres"
}
