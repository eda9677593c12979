package database

import (
	"log"
	"time"

	"showcase/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens and configures the GORM SQLite database according to cfg,
// applies connection pool settings and optional SQLite PRAGMAs, and returns
// the resulting handle. The caller owns the handle and passes it to
// NewAccessor; there is no package-level database state.
//
// The demo settings table itself is created lazily on first page load, not
// here (the hosting platform the demo stands in for provisions schemas the
// same way).
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	// Configure GORM log level
	logLevel := logger.Silent
	if cfg.LogLevel == "DEBUG" {
		logLevel = logger.Info
	}

	logWriter := log.Writer()

	dsn := buildSQLiteDSN(cfg.DatabaseURL, cfg)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: sqliteMetricsLogger{inner: logger.New(
			log.New(logWriter, "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel: logLevel,
			},
		)},
	})
	if err != nil {
		return nil, err
	}

	// Get underlying SQL DB and configure the connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	pool := currentSQLitePoolConfig(cfg)
	sqlDB.SetMaxIdleConns(pool.maxIdleConns)
	sqlDB.SetMaxOpenConns(pool.maxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(pool.maxIdleSec) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.maxLifeSec) * time.Second)

	// Apply PRAGMAs again as a best-effort startup initialization (useful for existing DB files).
	// Connection URL parameters ensure PRAGMAs are applied for new connections too.
	if cfg.SQLitePragmasEnabled {
		if cfg.SQLiteBusyTimeoutMS > 0 {
			db.Exec("PRAGMA busy_timeout = ?", cfg.SQLiteBusyTimeoutMS)
		}
		if journalMode := normalizeSQLiteJournalMode(cfg.SQLiteJournalMode); journalMode != "" {
			db.Exec("PRAGMA journal_mode = " + journalMode)
		}
		if synchronous := normalizeSQLiteSynchronous(cfg.SQLiteSynchronous); synchronous != "" {
			db.Exec("PRAGMA synchronous = " + synchronous)
		}
		if cfg.SQLiteForeignKeys {
			db.Exec("PRAGMA foreign_keys = ON")
		} else {
			db.Exec("PRAGMA foreign_keys = OFF")
		}
	}

	log.Println("Database initialized successfully")
	return db, nil
}

// CloseDB closes the database connection and releases resources
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	return sqlDB.Close()
}
