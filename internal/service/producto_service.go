package service

import (
	"context"
	"errors"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tax divisors: the entered cost is IGV-inclusive (18%), the entered sale
// price carries a 10% municipal margin. The stored base values are always
// derived from the entered ones, never edited on their own.
var (
	divisorCosto  = decimal.NewFromFloat(1.18)
	divisorPrecio = decimal.NewFromFloat(1.10)
)

const precioDecimales = 2

type ProductoService interface {
	Buscar(ctx context.Context, search string) ([]dto.ProductoListItem, error)
	Obtener(ctx context.Context, cod string) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.GuardarProductoRequest) error
	Actualizar(ctx context.Context, cod string, req dto.GuardarProductoRequest) error
	Eliminar(ctx context.Context, cod string) error
	Config(ctx context.Context) (*dto.ProductosConfigResponse, error)
}

type productoService struct {
	repo        repository.ProductoRepository
	lineas      repository.LineaRepository
	clases      repository.ClaseRepository
	proveedores repository.ProveedorRepository
	refs        repository.ReferenciaRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	lineas repository.LineaRepository,
	clases repository.ClaseRepository,
	proveedores repository.ProveedorRepository,
	refs repository.ReferenciaRepository,
) ProductoService {
	return &productoService{
		repo:        repo,
		lineas:      lineas,
		clases:      clases,
		proveedores: proveedores,
		refs:        refs,
	}
}

// DerivarBase computes the stored tax-exclusive value from an entered amount.
func DerivarBase(entrada, divisor decimal.Decimal) decimal.Decimal {
	return entrada.DivRound(divisor, precioDecimales)
}

func (s *productoService) Buscar(ctx context.Context, search string) ([]dto.ProductoListItem, error) {
	productos, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoListItem, 0, len(productos))
	for _, p := range productos {
		item := dto.ProductoListItem{
			CodPro: p.CodPro,
			Nombre: p.Nombre,
			Stock:  p.Stock,
			Precio: p.PrecioVenta,
		}
		if p.Linea != nil {
			item.LineaNombre = &p.Linea.Nombre
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *productoService) Obtener(ctx context.Context, cod string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, cod)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &dto.ProductoResponse{
		CodPro:      p.CodPro,
		CodBar:      p.CodBar,
		CodLinea:    p.CodLinea,
		CodClase:    p.CodClase,
		Nombre:      p.Nombre,
		CodProv:     p.CodProv,
		Peso:        p.Peso,
		Stock:       p.Stock,
		Afecto:      p.Afecto,
		Tipo:        p.Tipo,
		Unimed:      p.Unimed,
		CostoReal:   p.CostoReal,
		CostoBase:   p.CostoBase,
		PrecioVenta: p.PrecioVenta,
		PrecioBase:  p.PrecioBase,
		Eliminado:   p.Eliminado,
	}, nil
}

// mapProducto builds the model from the form, deriving both base values.
func mapProducto(req dto.GuardarProductoRequest) *model.Producto {
	return &model.Producto{
		CodBar:      req.CodBar,
		CodLinea:    req.Linea.Int(),
		CodClase:    req.Clase.Int(),
		Nombre:      req.Razon,
		CodProv:     req.Proveedor,
		Peso:        req.Peso.Decimal,
		Stock:       req.Stock.Decimal,
		Afecto:      bool(req.Afecto),
		Tipo:        req.TipoPro.Int(),
		Unimed:      req.Unidad.Int(),
		CostoReal:   req.Costo.Decimal,
		CostoBase:   DerivarBase(req.Costo.Decimal, divisorCosto),
		PrecioVenta: req.PVenta.Decimal,
		PrecioBase:  DerivarBase(req.PVenta.Decimal, divisorPrecio),
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.GuardarProductoRequest) error {
	p := mapProducto(req)
	p.Eliminado = false
	return s.repo.Create(ctx, p)
}

func (s *productoService) Actualizar(ctx context.Context, cod string, req dto.GuardarProductoRequest) error {
	p := mapProducto(req)
	p.CodPro = cod
	return s.repo.Update(ctx, p)
}

func (s *productoService) Eliminar(ctx context.Context, cod string) error {
	return s.repo.SoftDelete(ctx, cod)
}

// Config aggregates the reference data the product form needs in one call,
// plus a preview of the next product code.
func (s *productoService) Config(ctx context.Context) (*dto.ProductosConfigResponse, error) {
	lineas, err := s.lineas.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	clases, err := s.clases.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	proveedores, err := s.proveedores.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	tipos, err := s.refs.ListTipoProducto(ctx)
	if err != nil {
		return nil, err
	}
	unidades, err := s.refs.ListUnidadMedida(ctx)
	if err != nil {
		return nil, err
	}
	igv, err := s.refs.ListIGV(ctx)
	if err != nil {
		return nil, err
	}
	nextCode, err := s.repo.NextCodigo(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductosConfigResponse{
		Lineas:      make([]dto.LineaOption, 0, len(lineas)),
		Clases:      make([]dto.ClaseOption, 0, len(clases)),
		Proveedores: make([]dto.ProveedorOption, 0, len(proveedores)),
		Tipos:       make([]dto.TipoProductoOption, 0, len(tipos)),
		Unidades:    make([]dto.UnidadMedidaOption, 0, len(unidades)),
		IGV:         make([]dto.IGVOption, 0, len(igv)),
		NextCode:    nextCode,
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaOption{CodLinea: l.CodLinea, Nombre: l.Nombre})
	}
	for _, c := range clases {
		resp.Clases = append(resp.Clases, dto.ClaseOption{CodClase: c.CodClase, Nombre: c.Nombre, CodLinea: c.CodLinea})
	}
	for _, p := range proveedores {
		resp.Proveedores = append(resp.Proveedores, dto.ProveedorOption{CodProv: p.CodProv, Razon: p.Razon})
	}
	for _, t := range tipos {
		resp.Tipos = append(resp.Tipos, dto.TipoProductoOption{IDTipoPro: t.IDTipoPro, Descripcion: t.Descripcion})
	}
	for _, u := range unidades {
		resp.Unidades = append(resp.Unidades, dto.UnidadMedidaOption{IDUnimed: u.IDUnimed, Descripcion: u.Descripcion})
	}
	for _, fila := range igv {
		resp.IGV = append(resp.IGV, dto.IGVOption{Describe: fila.CDescribe, Conversion: fila.Conversion})
	}
	return resp, nil
}
