package infra

import (
	"fmt"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens (creating on first run) the SQLite database file and runs
// AutoMigrate so the schema always exists before the server accepts requests.
// foreign_keys is enabled explicitly: SQLite ships with it off, and the FK
// constraints are the authoritative referential guard for catalog deletes.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY under
	// concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Producto{},
		&model.Factura{},
		&model.DetalleFactura{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
