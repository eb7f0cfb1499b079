package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubEmpleadoRepo struct {
	empleados map[int]*model.Empleado
	tipos     map[int]string
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{
		empleados: make(map[int]*model.Empleado),
		tipos:     map[int]string{1: "Vendedor", 2: "Almacenero"},
	}
}

func (r *stubEmpleadoRepo) Search(_ context.Context, search string) ([]model.Empleado, error) {
	var result []model.Empleado
	for _, e := range r.empleados {
		if !e.Activo {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Nombre), strings.ToLower(search)) &&
			!strings.Contains(e.Documento, search) {
			continue
		}
		copia := *e
		if e.Tipo != nil {
			if desc, ok := r.tipos[*e.Tipo]; ok {
				copia.TipoEmpleado = &model.TipoEmpleado{IDTipo: *e.Tipo, Descripcion: desc}
			}
		}
		result = append(result, copia)
	}
	return result, nil
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id int) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	ultimo := 0
	for cod := range r.empleados {
		if cod > ultimo {
			ultimo = cod
		}
	}
	e.Codemp = repository.ProximoCodigoEmpleado(ultimo)
	r.empleados[e.Codemp] = e
	return nil
}

func (r *stubEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	existing, ok := r.empleados[e.Codemp]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	activo := existing.Activo
	*existing = *e
	existing.Activo = activo
	return nil
}

func (r *stubEmpleadoRepo) SoftDelete(_ context.Context, id int) error {
	if e, ok := r.empleados[id]; ok {
		e.Activo = false
	}
	return nil
}

var _ repository.EmpleadoRepository = (*stubEmpleadoRepo)(nil)

func tipo(n int) dto.CodigoNulo {
	return dto.CodigoNulo{Valido: true, Valor: n}
}

func TestEmpleadoCrearAsignaCodigo(t *testing.T) {
	repo := newStubEmpleadoRepo()
	svc := NewEmpleadoService(repo, stubReferenciaRepo{})
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, dto.GuardarEmpleadoRequest{Razon: "Juan Pérez", Tipo: tipo(1)}))
	require.NoError(t, svc.Crear(ctx, dto.GuardarEmpleadoRequest{Razon: "Ana Torres"}))

	primero, err := svc.Obtener(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", primero.Nombre)
	require.NotNil(t, primero.Tipo)
	assert.Equal(t, 1, *primero.Tipo)

	// un tipo ausente queda nulo, no cero
	segundo, err := svc.Obtener(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, segundo.Tipo)
}

func TestEmpleadoBuscarExponeTipoNombre(t *testing.T) {
	repo := newStubEmpleadoRepo()
	svc := NewEmpleadoService(repo, stubReferenciaRepo{})
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, dto.GuardarEmpleadoRequest{Razon: "Juan Pérez", Tipo: tipo(2)}))

	items, err := svc.Buscar(ctx, "juan")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].TipoNombre)
	assert.Equal(t, "Almacenero", *items[0].TipoNombre)
}

func TestEmpleadoEliminadoLogico(t *testing.T) {
	repo := newStubEmpleadoRepo()
	svc := NewEmpleadoService(repo, stubReferenciaRepo{})
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, dto.GuardarEmpleadoRequest{Razon: "Juan Pérez"}))
	require.NoError(t, svc.Eliminar(ctx, 1))

	items, err := svc.Buscar(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)

	e, err := svc.Obtener(ctx, 1)
	require.NoError(t, err)
	assert.False(t, e.Activo)
}

func TestEmpleadoObtenerNoEncontrado(t *testing.T) {
	svc := NewEmpleadoService(newStubEmpleadoRepo(), stubReferenciaRepo{})

	_, err := svc.Obtener(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestEmpleadoListarTipos(t *testing.T) {
	svc := NewEmpleadoService(newStubEmpleadoRepo(), stubReferenciaRepo{})

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	require.Len(t, tipos, 1)
	assert.Equal(t, "Vendedor", tipos[0].Descripcion)
}
