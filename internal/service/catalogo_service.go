package service

import (
	"context"
	"errors"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"gorm.io/gorm"
)

// Tabla is the closed set of catalog tables served through the generic
// /api/:tabla endpoints. Dispatch is an explicit switch on this enum — table
// or column names never come from request input.
type Tabla int

const (
	TablaLineas Tabla = iota
	TablaClases
)

// TablaPorToken maps the route token to its table. The second return value is
// false for any token outside the closed set; the handler turns that into a
// 404 so the generic routes can never shadow an entity route.
func TablaPorToken(token string) (Tabla, bool) {
	switch token {
	case "lineas":
		return TablaLineas, true
	case "clases":
		return TablaClases, true
	default:
		return 0, false
	}
}

// ErrLineaPadreRequerida rejects a clase write without a valid parent line.
var ErrLineaPadreRequerida = errors.New("codLineaPadre es obligatorio para clases")

// errTablaDesconocida guards the dispatch switches. Unreachable through the
// router (TablaPorToken is the only constructor), but a Tabla value outside
// the enum must not fall through to either table.
var errTablaDesconocida = errors.New("tabla no reconocida")

// CatalogoService multiplexes the five CRUD verbs over the two catalog tables.
type CatalogoService interface {
	Buscar(ctx context.Context, t Tabla, search string) ([]dto.CatalogoListItem, error)
	Obtener(ctx context.Context, t Tabla, id int) (*dto.CatalogoResponse, error)
	Crear(ctx context.Context, t Tabla, req dto.GuardarCatalogoRequest) error
	Actualizar(ctx context.Context, t Tabla, id int, req dto.GuardarCatalogoRequest) error
	Eliminar(ctx context.Context, t Tabla, id int) error
}

type catalogoService struct {
	lineas repository.LineaRepository
	clases repository.ClaseRepository
}

func NewCatalogoService(lineas repository.LineaRepository, clases repository.ClaseRepository) CatalogoService {
	return &catalogoService{lineas: lineas, clases: clases}
}

func (s *catalogoService) Buscar(ctx context.Context, t Tabla, search string) ([]dto.CatalogoListItem, error) {
	switch t {
	case TablaLineas:
		lineas, err := s.lineas.Search(ctx, search)
		if err != nil {
			return nil, err
		}
		result := make([]dto.CatalogoListItem, 0, len(lineas))
		for _, l := range lineas {
			result = append(result, dto.CatalogoListItem{ID: l.CodLinea, Nombre: l.Nombre})
		}
		return result, nil
	case TablaClases:
		clases, err := s.clases.Search(ctx, search)
		if err != nil {
			return nil, err
		}
		result := make([]dto.CatalogoListItem, 0, len(clases))
		for _, c := range clases {
			item := dto.CatalogoListItem{ID: c.CodClase, Nombre: c.Nombre}
			if c.Linea != nil {
				item.LineaPadre = &c.Linea.Nombre
			}
			result = append(result, item)
		}
		return result, nil
	default:
		return nil, errTablaDesconocida
	}
}

func (s *catalogoService) Obtener(ctx context.Context, t Tabla, id int) (*dto.CatalogoResponse, error) {
	switch t {
	case TablaLineas:
		l, err := s.lineas.FindByID(ctx, id)
		if err != nil {
			return nil, mapNoEncontrado(err)
		}
		return &dto.CatalogoResponse{ID: l.CodLinea, Nombre: l.Nombre, Activo: l.Activo}, nil
	case TablaClases:
		c, err := s.clases.FindByID(ctx, id)
		if err != nil {
			return nil, mapNoEncontrado(err)
		}
		cod := c.CodLinea
		return &dto.CatalogoResponse{ID: c.CodClase, Nombre: c.Nombre, CodLinea: &cod, Activo: c.Activo}, nil
	default:
		return nil, errTablaDesconocida
	}
}

func (s *catalogoService) Crear(ctx context.Context, t Tabla, req dto.GuardarCatalogoRequest) error {
	switch t {
	case TablaLineas:
		return s.lineas.Create(ctx, &model.Linea{Nombre: req.Razon, Activo: true})
	case TablaClases:
		if req.CodLineaPadre == nil {
			return ErrLineaPadreRequerida
		}
		return s.clases.Create(ctx, &model.Clase{
			Nombre:   req.Razon,
			CodLinea: req.CodLineaPadre.Int(),
			Activo:   true,
		})
	default:
		return errTablaDesconocida
	}
}

// Actualizar applies the same parent-line coercion as Crear: the legacy
// update path skipped it, which let a malformed parent id reach the store.
func (s *catalogoService) Actualizar(ctx context.Context, t Tabla, id int, req dto.GuardarCatalogoRequest) error {
	switch t {
	case TablaLineas:
		return s.lineas.Update(ctx, &model.Linea{CodLinea: id, Nombre: req.Razon})
	case TablaClases:
		if req.CodLineaPadre == nil {
			return ErrLineaPadreRequerida
		}
		return s.clases.Update(ctx, &model.Clase{
			CodClase: id,
			Nombre:   req.Razon,
			CodLinea: req.CodLineaPadre.Int(),
		})
	default:
		return errTablaDesconocida
	}
}

func (s *catalogoService) Eliminar(ctx context.Context, t Tabla, id int) error {
	switch t {
	case TablaLineas:
		return s.lineas.SoftDelete(ctx, id)
	case TablaClases:
		return s.clases.SoftDelete(ctx, id)
	default:
		return errTablaDesconocida
	}
}

func mapNoEncontrado(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	return err
}
