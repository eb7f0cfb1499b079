package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ─────────────────────────────────────────────────────────────

// GuardarProductoRequest mirrors the product form. Codigo is accepted for
// compatibility with the UI (it previews the next code) but the server always
// assigns the definitive code on create.
type GuardarProductoRequest struct {
	Codigo    string  `json:"codigo"`
	Razon     string  `json:"razon"     validate:"required,max=70"`
	CodBar    string  `json:"codBar"    validate:"max=15"`
	Linea     Codigo  `json:"linea"     validate:"required"`
	Clase     Codigo  `json:"clase"     validate:"required"`
	Proveedor string  `json:"proveedor" validate:"required,len=4"`
	Peso      Monto   `json:"peso"`
	Stock     Monto   `json:"stock"`
	Afecto    Bandera `json:"afecto"`
	TipoPro   Codigo  `json:"tipoPro"   validate:"required"`
	Unidad    Codigo  `json:"unidad"    validate:"required"`
	Costo     Monto   `json:"costo"`
	PVenta    Monto   `json:"pVenta"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type ProductoListItem struct {
	CodPro      string          `json:"codPro"`
	Nombre      string          `json:"nombre"`
	Stock       decimal.Decimal `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
	LineaNombre *string         `json:"lineaNombre"`
}

type ProductoResponse struct {
	CodPro      string          `json:"codPro"`
	CodBar      string          `json:"codBar"`
	CodLinea    int             `json:"codLinea"`
	CodClase    int             `json:"codClase"`
	Nombre      string          `json:"nombre"`
	CodProv     string          `json:"codProv"`
	Peso        decimal.Decimal `json:"peso"`
	Stock       decimal.Decimal `json:"stock"`
	Afecto      bool            `json:"afecto"`
	Tipo        int             `json:"tipo"`
	Unimed      int             `json:"unimed"`
	CostoReal   decimal.Decimal `json:"costoReal"`
	CostoBase   decimal.Decimal `json:"costoBase"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	PrecioBase  decimal.Decimal `json:"precioBase"`
	Eliminado   bool            `json:"eliminado"`
}

// ── /api/productos-config ────────────────────────────────────────────────────

type LineaOption struct {
	CodLinea int    `json:"codLinea"`
	Nombre   string `json:"nombre"`
}

type ClaseOption struct {
	CodClase int    `json:"codClase"`
	Nombre   string `json:"nombre"`
	CodLinea int    `json:"codLinea"`
}

type ProveedorOption struct {
	CodProv string `json:"codProv"`
	Razon   string `json:"razon"`
}

type TipoProductoOption struct {
	IDTipoPro   int    `json:"idTipoPro"`
	Descripcion string `json:"descripcion"`
}

type UnidadMedidaOption struct {
	IDUnimed    int    `json:"idUnimed"`
	Descripcion string `json:"descripcion"`
}

type IGVOption struct {
	Describe   string          `json:"c_describe"`
	Conversion decimal.Decimal `json:"conversion"`
}

type ProductosConfigResponse struct {
	Lineas      []LineaOption        `json:"lineas"`
	Clases      []ClaseOption        `json:"clases"`
	Proveedores []ProveedorOption    `json:"proveedores"`
	Tipos       []TipoProductoOption `json:"tipos"`
	Unidades    []UnidadMedidaOption `json:"unidades"`
	IGV         []IGVOption          `json:"igv"`
	NextCode    string               `json:"nextCode"`
}
