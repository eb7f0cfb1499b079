package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	// Search preloads TipoEmpleado so the service can surface the type name.
	Search(ctx context.Context, search string) ([]model.Empleado, error)
	FindByID(ctx context.Context, id int) (*model.Empleado, error)
	// Create assigns the next employee code and inserts; the caller must leave
	// Codemp zero.
	Create(ctx context.Context, e *model.Empleado) error
	Update(ctx context.Context, e *model.Empleado) error
	SoftDelete(ctx context.Context, id int) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Search(ctx context.Context, search string) ([]model.Empleado, error) {
	var empleados []model.Empleado
	pat := "%" + search + "%"
	err := r.db.WithContext(ctx).
		Preload("TipoEmpleado").
		Where("(documento ILIKE ? OR nombre ILIKE ?) AND activo = true", pat, pat).
		Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) FindByID(ctx context.Context, id int) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Where("codemp = ?", id).First(&e).Error
	return &e, err
}

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var ultimo int
			if err := tx.Model(&model.Empleado{}).
				Select("COALESCE(MAX(codemp), 0)").Scan(&ultimo).Error; err != nil {
				return err
			}
			e.Codemp = ProximoCodigoEmpleado(ultimo)
			return tx.Create(e).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("no se pudo asignar código de empleado: %w", err)
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Model(&model.Empleado{}).
		Where("codemp = ?", e.Codemp).
		Updates(map[string]interface{}{
			"documento": e.Documento,
			"nombre":    e.Nombre,
			"celular":   e.Celular,
			"tipo":      e.Tipo,
			"direccion": e.Direccion,
			"email":     e.Email,
		}).Error
}

func (r *empleadoRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Empleado{}).
		Where("codemp = ?", id).Update("activo", false).Error
}
