package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the SQLite database, migrates it and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			Level:         gorm_logger.Warn,
			SlowThreshold: 200 * time.Millisecond,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "allocator:after_query", queryCallback},
		{db.Callback().Query().After("*"), "allocator:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "allocator:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "allocator:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "allocator:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "allocator:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "allocator:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.TrimRight(strings.ReplaceAll(db.Statement.Table, "_", " "), "s")
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: envelopes.name") {
		db.Error = ErrEnvelopeNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = general(db.Error)
}

// general replaces database errors we cannot provide more useful
// information about with ErrGeneral. The original error is logged so
// that server admins can debug.
func general(err error) error {
	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code and
// creates the balance if it does not exist yet.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Envelope{}, Balance{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	err = db.FirstOrCreate(&Balance{ID: balanceID}).Error
	if err != nil {
		return fmt.Errorf("error creating the balance: %w", err)
	}

	return nil
}
