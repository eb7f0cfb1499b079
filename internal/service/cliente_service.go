package service

import (
	"context"
	"errors"
	"time"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	Buscar(ctx context.Context, search string) ([]dto.ClienteListItem, error)
	Obtener(ctx context.Context, id int) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, req dto.GuardarClienteRequest) error
	Actualizar(ctx context.Context, id int, req dto.GuardarClienteRequest) error
	Eliminar(ctx context.Context, id int) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		Codclie:   c.Codclie,
		TipoDoc:   c.TipoDoc,
		Documento: c.Documento,
		Razon:     c.Razon,
		Direccion: c.Direccion,
		Celular:   c.Celular,
		Email:     c.Email,
		Activo:    c.Activo,
		Fecha:     c.Fecha,
	}
}

func (s *clienteService) Buscar(ctx context.Context, search string) ([]dto.ClienteListItem, error) {
	clientes, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteListItem, 0, len(clientes))
	for _, c := range clientes {
		result = append(result, dto.ClienteListItem{
			Codclie:   c.Codclie,
			Documento: c.Documento,
			Razon:     c.Razon,
			Direccion: c.Direccion,
			Celular:   c.Celular,
			Email:     c.Email,
		})
	}
	return result, nil
}

func (s *clienteService) Obtener(ctx context.Context, id int) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	resp := mapCliente(*c)
	return &resp, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.GuardarClienteRequest) error {
	c := &model.Cliente{
		TipoDoc:   req.TipoDoc,
		Documento: req.Documento,
		Razon:     req.Razon,
		Direccion: req.Direccion,
		Celular:   req.Celular,
		Email:     req.Email,
		Activo:    true,
		Fecha:     time.Now(),
	}
	return s.repo.Create(ctx, c)
}

func (s *clienteService) Actualizar(ctx context.Context, id int, req dto.GuardarClienteRequest) error {
	c := &model.Cliente{
		Codclie:   id,
		TipoDoc:   req.TipoDoc,
		Documento: req.Documento,
		Razon:     req.Razon,
		Direccion: req.Direccion,
		Celular:   req.Celular,
		Email:     req.Email,
	}
	return s.repo.Update(ctx, c)
}

func (s *clienteService) Eliminar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}
