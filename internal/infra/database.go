package infra

import (
	"fmt"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. TranslateError is enabled so repositories can
// detect duplicate-key violations as gorm.ErrDuplicatedKey — the identifier
// generators rely on it for their insert-retry loop.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.TipoEmpleado{},
		&model.Empleado{},
		&model.Linea{},
		&model.Clase{},
		&model.TipoProducto{},
		&model.UnidadMedida{},
		&model.TablaIGV{},
		&model.Producto{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
