package repository

import (
	"context"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type ClaseRepository interface {
	// Search preloads the parent line so lists can show its name.
	Search(ctx context.Context, search string) ([]model.Clase, error)
	ListActivas(ctx context.Context) ([]model.Clase, error)
	FindByID(ctx context.Context, id int) (*model.Clase, error)
	Create(ctx context.Context, c *model.Clase) error
	Update(ctx context.Context, c *model.Clase) error
	SoftDelete(ctx context.Context, id int) error
}

type claseRepo struct{ db *gorm.DB }

func NewClaseRepository(db *gorm.DB) ClaseRepository { return &claseRepo{db: db} }

func (r *claseRepo) Search(ctx context.Context, search string) ([]model.Clase, error) {
	var clases []model.Clase
	err := r.db.WithContext(ctx).
		Preload("Linea").
		Where("nombre ILIKE ? AND activo = true", "%"+search+"%").
		Order("nombre ASC").
		Find(&clases).Error
	return clases, err
}

func (r *claseRepo) ListActivas(ctx context.Context) ([]model.Clase, error) {
	var clases []model.Clase
	err := r.db.WithContext(ctx).Where("activo = true").Find(&clases).Error
	return clases, err
}

func (r *claseRepo) FindByID(ctx context.Context, id int) (*model.Clase, error) {
	var c model.Clase
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *claseRepo) Create(ctx context.Context, c *model.Clase) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *claseRepo) Update(ctx context.Context, c *model.Clase) error {
	return r.db.WithContext(ctx).Model(&model.Clase{}).
		Where("cod_clase = ?", c.CodClase).
		Updates(map[string]interface{}{
			"nombre":    c.Nombre,
			"cod_linea": c.CodLinea,
		}).Error
}

func (r *claseRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Clase{}).
		Where("cod_clase = ?", id).Update("activo", false).Error
}
