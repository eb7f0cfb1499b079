package service

import (
	"context"
	"errors"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"gorm.io/gorm"
)

type ProveedorService interface {
	Buscar(ctx context.Context, search string) ([]dto.ProveedorListItem, error)
	Obtener(ctx context.Context, cod string) (*dto.ProveedorResponse, error)
	Crear(ctx context.Context, req dto.GuardarProveedorRequest) error
	Actualizar(ctx context.Context, cod string, req dto.GuardarProveedorRequest) error
	Eliminar(ctx context.Context, cod string) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Buscar(ctx context.Context, search string) ([]dto.ProveedorListItem, error) {
	proveedores, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorListItem, 0, len(proveedores))
	for _, p := range proveedores {
		result = append(result, dto.ProveedorListItem{
			CodProv:   p.CodProv,
			Documento: p.Documento,
			Razon:     p.Razon,
			Direccion: p.Direccion,
			Telefono:  p.Telefono,
			Email:     p.Email,
		})
	}
	return result, nil
}

func (s *proveedorService) Obtener(ctx context.Context, cod string) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, cod)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &dto.ProveedorResponse{
		CodProv:   p.CodProv,
		TipoDoc:   p.TipoDoc,
		Documento: p.Documento,
		Razon:     p.Razon,
		Direccion: p.Direccion,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Eliminado: p.Eliminado,
	}, nil
}

func (s *proveedorService) Crear(ctx context.Context, req dto.GuardarProveedorRequest) error {
	p := &model.Proveedor{
		TipoDoc:   req.TipoDoc,
		Documento: req.Documento,
		Razon:     req.Razon,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Eliminado: false,
	}
	return s.repo.Create(ctx, p)
}

func (s *proveedorService) Actualizar(ctx context.Context, cod string, req dto.GuardarProveedorRequest) error {
	p := &model.Proveedor{
		CodProv:   cod,
		TipoDoc:   req.TipoDoc,
		Documento: req.Documento,
		Razon:     req.Razon,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
	}
	return s.repo.Update(ctx, p)
}

func (s *proveedorService) Eliminar(ctx context.Context, cod string) error {
	return s.repo.SoftDelete(ctx, cod)
}
