package database

import (
	"fmt"
	"log"

	"dinebook/config"
	"dinebook/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and migrates the schema.
func Connect(s *config.Settings) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch s.DBDriver {
	case "sqlite":
		db, err = OpenSQLite(s.SQLitePath)
	default:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Printf("database: connection opened (%s)", s.DBDriver)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("database: migrated")

	return db, nil
}

// OpenSQLite opens a sqlite database with a single connection, so ":memory:"
// stays one database and writers never hit SQLITE_BUSY.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Restaurant{},
		&model.User{},
		&model.Booking{},
		&model.SlotLock{},
	)
}
