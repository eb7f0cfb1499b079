package service

import (
	"context"
	"errors"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"gorm.io/gorm"
)

type EmpleadoService interface {
	Buscar(ctx context.Context, search string) ([]dto.EmpleadoListItem, error)
	Obtener(ctx context.Context, id int) (*dto.EmpleadoResponse, error)
	Crear(ctx context.Context, req dto.GuardarEmpleadoRequest) error
	Actualizar(ctx context.Context, id int, req dto.GuardarEmpleadoRequest) error
	Eliminar(ctx context.Context, id int) error
	ListarTipos(ctx context.Context) ([]dto.TipoEmpleadoResponse, error)
}

type empleadoService struct {
	repo repository.EmpleadoRepository
	refs repository.ReferenciaRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository, refs repository.ReferenciaRepository) EmpleadoService {
	return &empleadoService{repo: repo, refs: refs}
}

func (s *empleadoService) Buscar(ctx context.Context, search string) ([]dto.EmpleadoListItem, error) {
	empleados, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EmpleadoListItem, 0, len(empleados))
	for _, e := range empleados {
		item := dto.EmpleadoListItem{
			Codemp:    e.Codemp,
			Documento: e.Documento,
			Nombre:    e.Nombre,
			Celular:   e.Celular,
			Direccion: e.Direccion,
			Email:     e.Email,
			Tipo:      e.Tipo,
		}
		if e.TipoEmpleado != nil {
			item.TipoNombre = &e.TipoEmpleado.Descripcion
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *empleadoService) Obtener(ctx context.Context, id int) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &dto.EmpleadoResponse{
		Codemp:    e.Codemp,
		Documento: e.Documento,
		Nombre:    e.Nombre,
		Celular:   e.Celular,
		Tipo:      e.Tipo,
		Direccion: e.Direccion,
		Email:     e.Email,
		Activo:    e.Activo,
	}, nil
}

func (s *empleadoService) Crear(ctx context.Context, req dto.GuardarEmpleadoRequest) error {
	e := &model.Empleado{
		Documento: req.Documento,
		Nombre:    req.Razon,
		Celular:   req.Celular,
		Tipo:      req.Tipo.Ptr(),
		Direccion: req.Direccion,
		Email:     req.Email,
		Activo:    true,
	}
	return s.repo.Create(ctx, e)
}

func (s *empleadoService) Actualizar(ctx context.Context, id int, req dto.GuardarEmpleadoRequest) error {
	e := &model.Empleado{
		Codemp:    id,
		Documento: req.Documento,
		Nombre:    req.Razon,
		Celular:   req.Celular,
		Tipo:      req.Tipo.Ptr(),
		Direccion: req.Direccion,
		Email:     req.Email,
	}
	return s.repo.Update(ctx, e)
}

func (s *empleadoService) Eliminar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *empleadoService) ListarTipos(ctx context.Context) ([]dto.TipoEmpleadoResponse, error) {
	tipos, err := s.refs.ListTipoEmpleado(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TipoEmpleadoResponse, 0, len(tipos))
	for _, t := range tipos {
		result = append(result, dto.TipoEmpleadoResponse{IDTipo: t.IDTipo, Descripcion: t.Descripcion})
	}
	return result, nil
}
