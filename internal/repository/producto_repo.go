package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	// Search preloads Linea so lists can show the line name.
	Search(ctx context.Context, search string) ([]model.Producto, error)
	FindByID(ctx context.Context, cod string) (*model.Producto, error)
	// Create assigns the next product code and inserts; the caller must leave
	// CodPro empty.
	Create(ctx context.Context, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, cod string) error
	// NextCodigo previews the code the next create would assign. Advisory
	// only: the create path recomputes inside its own transaction.
	NextCodigo(ctx context.Context) (string, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Search(ctx context.Context, search string) ([]model.Producto, error) {
	var productos []model.Producto
	pat := "%" + search + "%"
	err := r.db.WithContext(ctx).
		Preload("Linea").
		Where("(cod_pro ILIKE ? OR nombre ILIKE ?) AND eliminado = false", pat, pat).
		Order("cod_pro DESC").
		Limit(searchLimit).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(ctx context.Context, cod string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("cod_pro = ?", cod).First(&p).Error
	return &p, err
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			ultimo, err := maxCodigoProducto(tx)
			if err != nil {
				return err
			}
			p.CodPro = ProximoCodigoProducto(ultimo)
			return tx.Create(p).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("no se pudo asignar código de producto: %w", err)
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("cod_pro = ?", p.CodPro).
		Updates(map[string]interface{}{
			"cod_bar":      p.CodBar,
			"cod_linea":    p.CodLinea,
			"cod_clase":    p.CodClase,
			"nombre":       p.Nombre,
			"cod_prov":     p.CodProv,
			"peso":         p.Peso,
			"stock":        p.Stock,
			"afecto":       p.Afecto,
			"tipo":         p.Tipo,
			"unimed":       p.Unimed,
			"costo_real":   p.CostoReal,
			"costo_base":   p.CostoBase,
			"precio_venta": p.PrecioVenta,
			"precio_base":  p.PrecioBase,
		}).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, cod string) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("cod_pro = ?", cod).Update("eliminado", true).Error
}

func (r *productoRepo) NextCodigo(ctx context.Context) (string, error) {
	ultimo, err := maxCodigoProducto(r.db.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return ProximoCodigoProducto(ultimo), nil
}

func maxCodigoProducto(db *gorm.DB) (string, error) {
	var ultimo *string
	if err := db.Model(&model.Producto{}).Select("MAX(cod_pro)").Scan(&ultimo).Error; err != nil {
		return "", err
	}
	if ultimo == nil {
		return "", nil
	}
	return *ultimo, nil
}
