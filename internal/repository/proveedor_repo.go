package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Search(ctx context.Context, search string) ([]model.Proveedor, error)
	ListActivos(ctx context.Context) ([]model.Proveedor, error)
	FindByID(ctx context.Context, cod string) (*model.Proveedor, error)
	// Create assigns the next supplier code and inserts; the caller must leave
	// CodProv empty.
	Create(ctx context.Context, p *model.Proveedor) error
	Update(ctx context.Context, p *model.Proveedor) error
	SoftDelete(ctx context.Context, cod string) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Search(ctx context.Context, search string) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	pat := "%" + search + "%"
	err := r.db.WithContext(ctx).
		Where("(documento ILIKE ? OR razon ILIKE ?) AND eliminado = false", pat, pat).
		Order("cod_prov DESC").
		Limit(searchLimit).
		Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) ListActivos(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Where("eliminado = false").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) FindByID(ctx context.Context, cod string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Where("cod_prov = ?", cod).First(&p).Error
	return &p, err
}

// Create computes max+1 and inserts in one transaction. The char(4) primary
// key is the arbiter under concurrency: when two creates race to the same
// code the loser gets a duplicate-key error and recomputes.
func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var ultimo *string
			if err := tx.Model(&model.Proveedor{}).
				Select("MAX(cod_prov)").Scan(&ultimo).Error; err != nil {
				return err
			}
			if ultimo != nil {
				p.CodProv = ProximoCodigoProveedor(*ultimo)
			} else {
				p.CodProv = ProximoCodigoProveedor("")
			}
			return tx.Create(p).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("no se pudo asignar código de proveedor: %w", err)
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("cod_prov = ?", p.CodProv).
		Updates(map[string]interface{}{
			"tipo_doc":  p.TipoDoc,
			"documento": p.Documento,
			"razon":     p.Razon,
			"direccion": p.Direccion,
			"telefono":  p.Telefono,
			"email":     p.Email,
		}).Error
}

func (r *proveedorRepo) SoftDelete(ctx context.Context, cod string) error {
	return r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("cod_prov = ?", cod).Update("eliminado", true).Error
}
