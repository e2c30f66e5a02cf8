package initialize

import (
	"directory/config"
	"directory/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

// InitializeTables brings the schema up to date. Migrations are embedded so
// the binary is self-contained; sqlite applies them idempotently.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Applying schema migrations")

	sqlDB, err := db.DB()
	if err != nil {
		return log.Err("failed to get database handle", err)
	}

	migrations := &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "001_create_employees",
				Up: []string{`
					CREATE TABLE IF NOT EXISTS employees (
						id varchar(64) PRIMARY KEY,
						first_name varchar(255) NOT NULL,
						last_name varchar(255) NOT NULL,
						employment_date varchar(255),
						birth_date varchar(255),
						phone varchar(255) NOT NULL,
						email varchar(255) NOT NULL,
						department varchar(64) NOT NULL,
						position varchar(64) NOT NULL
					);
				`},
				Down: []string{`DROP TABLE IF EXISTS employees;`},
			},
			{
				Id: "002_create_store_meta",
				Up: []string{
					`
					CREATE TABLE IF NOT EXISTS store_meta (
						key varchar(64) PRIMARY KEY,
						value varchar(255)
					);
				`,
					`INSERT OR IGNORE INTO store_meta (key, value) VALUES ('schema_version', '1');`,
				},
				Down: []string{`DROP TABLE IF EXISTS store_meta;`},
			},
		},
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return log.Err("failed to apply migrations", err)
	}

	log.Info("Table initialization complete", "applied", applied)
	return nil
}
