package repository

import (
	"context"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

// searchLimit caps every entity search; the UI never pages past it.
const searchLimit = 50

type ClienteRepository interface {
	Search(ctx context.Context, search string) ([]model.Cliente, error)
	FindByID(ctx context.Context, id int) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id int) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Search(ctx context.Context, search string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	pat := "%" + search + "%"
	err := r.db.WithContext(ctx).
		Where("(documento ILIKE ? OR razon ILIKE ?) AND activo = true", pat, pat).
		Order("codclie DESC").
		Limit(searchLimit).
		Find(&clientes).Error
	return clientes, err
}

// FindByID returns the row regardless of the activo flag — edit forms must be
// able to load soft-deleted records.
func (r *clienteRepo) FindByID(ctx context.Context, id int) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("codclie = ?", c.Codclie).
		Updates(map[string]interface{}{
			"tipo_doc":  c.TipoDoc,
			"documento": c.Documento,
			"razon":     c.Razon,
			"direccion": c.Direccion,
			"celular":   c.Celular,
			"email":     c.Email,
		}).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("codclie = ?", id).Update("activo", false).Error
}
