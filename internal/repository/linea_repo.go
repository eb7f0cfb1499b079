package repository

import (
	"context"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type LineaRepository interface {
	Search(ctx context.Context, search string) ([]model.Linea, error)
	ListActivas(ctx context.Context) ([]model.Linea, error)
	FindByID(ctx context.Context, id int) (*model.Linea, error)
	Create(ctx context.Context, l *model.Linea) error
	Update(ctx context.Context, l *model.Linea) error
	SoftDelete(ctx context.Context, id int) error
}

type lineaRepo struct{ db *gorm.DB }

func NewLineaRepository(db *gorm.DB) LineaRepository { return &lineaRepo{db: db} }

// Search matches the line name only; catálogo lists are sorted alphabetically
// and, unlike the entity searches, are not capped.
func (r *lineaRepo) Search(ctx context.Context, search string) ([]model.Linea, error) {
	var lineas []model.Linea
	err := r.db.WithContext(ctx).
		Where("nombre ILIKE ? AND activo = true", "%"+search+"%").
		Order("nombre ASC").
		Find(&lineas).Error
	return lineas, err
}

func (r *lineaRepo) ListActivas(ctx context.Context) ([]model.Linea, error) {
	var lineas []model.Linea
	err := r.db.WithContext(ctx).Where("activo = true").Find(&lineas).Error
	return lineas, err
}

func (r *lineaRepo) FindByID(ctx context.Context, id int) (*model.Linea, error) {
	var l model.Linea
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *lineaRepo) Create(ctx context.Context, l *model.Linea) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lineaRepo) Update(ctx context.Context, l *model.Linea) error {
	return r.db.WithContext(ctx).Model(&model.Linea{}).
		Where("cod_linea = ?", l.CodLinea).
		Update("nombre", l.Nombre).Error
}

func (r *lineaRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Linea{}).
		Where("cod_linea = ?", id).Update("activo", false).Error
}
