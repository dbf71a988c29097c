// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a local SQLite file,
// depending on the configured driver, and applies the same pool settings
// and startup ping to both.
//
// # Connect
//
// Connect builds the dialector from the configuration. Open takes any
// dialector, which lets tests run against go-sqlmock through the MySQL
// dialector.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table using SHOW COLUMNS on MySQL
// and PRAGMA table_info on SQLite. The feed feature uses MissingColumns to
// warn at startup when the stories table lacks a column it reads.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "stories", []string{"id", "title"})
package database
