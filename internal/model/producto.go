package model

import "github.com/shopspring/decimal"

// TipoProducto is the reference list of product types.
type TipoProducto struct {
	IDTipoPro   int    `gorm:"column:id_tipo_pro;primaryKey;autoIncrement"`
	Descripcion string `gorm:"type:varchar(50);not null"`
}

func (TipoProducto) TableName() string { return "tipo_producto" }

// UnidadMedida is the reference list of measurement units.
type UnidadMedida struct {
	IDUnimed    int    `gorm:"column:id_unimed;primaryKey;autoIncrement"`
	Descripcion string `gorm:"type:varchar(50);not null"`
}

func (UnidadMedida) TableName() string { return "unidad_medida" }

// TablaIGV holds tax reference rows (n_codtabla = 1 selects the IGV set).
type TablaIGV struct {
	ID         int             `gorm:"primaryKey;autoIncrement"`
	NCodTabla  int             `gorm:"column:n_codtabla;index"`
	CDescribe  string          `gorm:"column:c_describe;type:varchar(50)"`
	Conversion decimal.Decimal `gorm:"type:decimal(9,4)"`
}

func (TablaIGV) TableName() string { return "tablas" }

// Producto represents a catalog product. The primary key is application-assigned:
// "T" followed by a 6-digit zero-padded sequence ("T000001", …). Each price/cost
// pair stores the value as entered plus a derived tax-exclusive base: CostoBase
// is CostoReal ÷ 1.18 and PrecioBase is PrecioVenta ÷ 1.10; the base values are
// recomputed on every write, never edited directly.
type Producto struct {
	CodPro      string          `gorm:"column:cod_pro;type:char(7);primaryKey"`
	CodBar      string          `gorm:"column:cod_bar;type:char(15)"`
	CodLinea    int             `gorm:"column:cod_linea;index"`
	CodClase    int             `gorm:"column:cod_clase;index"`
	Nombre      string          `gorm:"type:varchar(70);index"`
	CodProv     string          `gorm:"column:cod_prov;type:char(4);index"`
	Peso        decimal.Decimal `gorm:"type:decimal(9,3)"`
	Stock       decimal.Decimal `gorm:"type:decimal(9,2)"`
	Afecto      bool            `gorm:"not null;default:false"`
	Tipo        int             `gorm:"column:tipo"`
	Unimed      int             `gorm:"column:unimed"`
	CostoReal   decimal.Decimal `gorm:"type:decimal(12,2)"`
	CostoBase   decimal.Decimal `gorm:"type:decimal(12,2)"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(12,2)"`
	PrecioBase  decimal.Decimal `gorm:"type:decimal(12,2)"`
	AfectoFlete bool            `gorm:"not null;default:false"`
	Eliminado   bool            `gorm:"not null;default:false"`

	Linea     *Linea     `gorm:"foreignKey:CodLinea;references:CodLinea"`
	Proveedor *Proveedor `gorm:"foreignKey:CodProv;references:CodProv"`
}

func (Producto) TableName() string { return "productos" }
