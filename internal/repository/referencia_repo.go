package repository

import (
	"context"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

// igvCodTabla selects the IGV rows from the shared reference table.
const igvCodTabla = 1

// ReferenciaRepository serves the read-only reference lists consumed by the
// maestros forms (employee types, product types, units, IGV rates).
type ReferenciaRepository interface {
	ListTipoEmpleado(ctx context.Context) ([]model.TipoEmpleado, error)
	ListTipoProducto(ctx context.Context) ([]model.TipoProducto, error)
	ListUnidadMedida(ctx context.Context) ([]model.UnidadMedida, error)
	ListIGV(ctx context.Context) ([]model.TablaIGV, error)
}

type referenciaRepo struct{ db *gorm.DB }

func NewReferenciaRepository(db *gorm.DB) ReferenciaRepository { return &referenciaRepo{db: db} }

func (r *referenciaRepo) ListTipoEmpleado(ctx context.Context) ([]model.TipoEmpleado, error) {
	var tipos []model.TipoEmpleado
	err := r.db.WithContext(ctx).Order("descripcion").Find(&tipos).Error
	return tipos, err
}

func (r *referenciaRepo) ListTipoProducto(ctx context.Context) ([]model.TipoProducto, error) {
	var tipos []model.TipoProducto
	err := r.db.WithContext(ctx).Find(&tipos).Error
	return tipos, err
}

func (r *referenciaRepo) ListUnidadMedida(ctx context.Context) ([]model.UnidadMedida, error) {
	var unidades []model.UnidadMedida
	err := r.db.WithContext(ctx).Find(&unidades).Error
	return unidades, err
}

func (r *referenciaRepo) ListIGV(ctx context.Context) ([]model.TablaIGV, error) {
	var filas []model.TablaIGV
	err := r.db.WithContext(ctx).Where("n_codtabla = ?", igvCodTabla).Find(&filas).Error
	return filas, err
}
