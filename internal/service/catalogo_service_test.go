package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/model"
	"github.com/Odenfis/taytaApp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory LineaRepository stub ───────────────────────────────────────────

type stubLineaRepo struct {
	lineas map[int]*model.Linea
	nextID int
}

func newStubLineaRepo() *stubLineaRepo {
	return &stubLineaRepo{lineas: make(map[int]*model.Linea), nextID: 1}
}

func (r *stubLineaRepo) Search(_ context.Context, search string) ([]model.Linea, error) {
	var result []model.Linea
	for _, l := range r.lineas {
		if l.Activo && strings.Contains(strings.ToLower(l.Nombre), strings.ToLower(search)) {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubLineaRepo) ListActivas(_ context.Context) ([]model.Linea, error) {
	return r.Search(context.Background(), "")
}

func (r *stubLineaRepo) FindByID(_ context.Context, id int) (*model.Linea, error) {
	l, ok := r.lineas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *stubLineaRepo) Create(_ context.Context, l *model.Linea) error {
	l.CodLinea = r.nextID
	r.nextID++
	r.lineas[l.CodLinea] = l
	return nil
}

func (r *stubLineaRepo) Update(_ context.Context, l *model.Linea) error {
	existing, ok := r.lineas[l.CodLinea]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Nombre = l.Nombre
	return nil
}

func (r *stubLineaRepo) SoftDelete(_ context.Context, id int) error {
	if l, ok := r.lineas[id]; ok {
		l.Activo = false
	}
	return nil
}

var _ repository.LineaRepository = (*stubLineaRepo)(nil)

// ── In-memory ClaseRepository stub ───────────────────────────────────────────

type stubClaseRepo struct {
	clases map[int]*model.Clase
	padres *stubLineaRepo
	nextID int
}

func newStubClaseRepo(padres *stubLineaRepo) *stubClaseRepo {
	return &stubClaseRepo{clases: make(map[int]*model.Clase), padres: padres, nextID: 1}
}

func (r *stubClaseRepo) Search(_ context.Context, search string) ([]model.Clase, error) {
	var result []model.Clase
	for _, c := range r.clases {
		if !c.Activo || !strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(search)) {
			continue
		}
		copia := *c
		if padre, ok := r.padres.lineas[c.CodLinea]; ok {
			copia.Linea = padre
		}
		result = append(result, copia)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubClaseRepo) ListActivas(_ context.Context) ([]model.Clase, error) {
	return r.Search(context.Background(), "")
}

func (r *stubClaseRepo) FindByID(_ context.Context, id int) (*model.Clase, error) {
	c, ok := r.clases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClaseRepo) Create(_ context.Context, c *model.Clase) error {
	c.CodClase = r.nextID
	r.nextID++
	r.clases[c.CodClase] = c
	return nil
}

func (r *stubClaseRepo) Update(_ context.Context, c *model.Clase) error {
	existing, ok := r.clases[c.CodClase]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Nombre = c.Nombre
	existing.CodLinea = c.CodLinea
	return nil
}

func (r *stubClaseRepo) SoftDelete(_ context.Context, id int) error {
	if c, ok := r.clases[id]; ok {
		c.Activo = false
	}
	return nil
}

var _ repository.ClaseRepository = (*stubClaseRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newCatalogoFixture() (CatalogoService, *stubLineaRepo, *stubClaseRepo) {
	lineas := newStubLineaRepo()
	clases := newStubClaseRepo(lineas)
	return NewCatalogoService(lineas, clases), lineas, clases
}

func codigoRef(n int) *dto.Codigo {
	c := dto.Codigo(n)
	return &c
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestTablaPorToken(t *testing.T) {
	_, ok := TablaPorToken("lineas")
	assert.True(t, ok)
	_, ok = TablaPorToken("clases")
	assert.True(t, ok)

	for _, token := range []string{"facturas", "Lineas", "", "lineas/"} {
		_, ok := TablaPorToken(token)
		assert.False(t, ok, "token %q no debe ser reconocido", token)
	}
}

func TestCatalogoCrearYListarLineas(t *testing.T) {
	svc, _, _ := newCatalogoFixture()
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Abarrotes"}))
	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Bebidas"}))

	items, err := svc.Buscar(ctx, TablaLineas, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// name-ascending order
	assert.Equal(t, "Abarrotes", items[0].Nombre)
	assert.Equal(t, "Bebidas", items[1].Nombre)
}

func TestCatalogoClaseRequiereLineaPadre(t *testing.T) {
	svc, _, _ := newCatalogoFixture()
	ctx := context.Background()

	err := svc.Crear(ctx, TablaClases, dto.GuardarCatalogoRequest{Razon: "Gaseosas"})
	assert.ErrorIs(t, err, ErrLineaPadreRequerida)

	err = svc.Actualizar(ctx, TablaClases, 1, dto.GuardarCatalogoRequest{Razon: "Gaseosas"})
	assert.ErrorIs(t, err, ErrLineaPadreRequerida)
}

func TestCatalogoClaseExponeLineaPadre(t *testing.T) {
	svc, _, _ := newCatalogoFixture()
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Bebidas"}))
	require.NoError(t, svc.Crear(ctx, TablaClases, dto.GuardarCatalogoRequest{
		Razon:         "Gaseosas",
		CodLineaPadre: codigoRef(1),
	}))

	items, err := svc.Buscar(ctx, TablaClases, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].LineaPadre)
	assert.Equal(t, "Bebidas", *items[0].LineaPadre)
}

func TestCatalogoEliminadoLogico(t *testing.T) {
	svc, _, _ := newCatalogoFixture()
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Limpieza"}))
	require.NoError(t, svc.Eliminar(ctx, TablaLineas, 1))

	// excluded from lists…
	items, err := svc.Buscar(ctx, TablaLineas, "")
	require.NoError(t, err)
	assert.Empty(t, items)

	// …but still reachable by id, flagged inactive
	resp, err := svc.Obtener(ctx, TablaLineas, 1)
	require.NoError(t, err)
	assert.False(t, resp.Activo)
}

func TestCatalogoTablaFueraDelEnum(t *testing.T) {
	svc, lineas, clases := newCatalogoFixture()
	ctx := context.Background()
	desconocida := Tabla(99)

	_, err := svc.Buscar(ctx, desconocida, "")
	assert.ErrorIs(t, err, errTablaDesconocida)
	_, err = svc.Obtener(ctx, desconocida, 1)
	assert.ErrorIs(t, err, errTablaDesconocida)
	assert.ErrorIs(t, svc.Crear(ctx, desconocida, dto.GuardarCatalogoRequest{Razon: "X"}), errTablaDesconocida)
	assert.ErrorIs(t, svc.Actualizar(ctx, desconocida, 1, dto.GuardarCatalogoRequest{Razon: "X"}), errTablaDesconocida)
	assert.ErrorIs(t, svc.Eliminar(ctx, desconocida, 1), errTablaDesconocida)

	// nothing reached either table
	assert.Empty(t, lineas.lineas)
	assert.Empty(t, clases.clases)
}

func TestCatalogoObtenerNoEncontrado(t *testing.T) {
	svc, _, _ := newCatalogoFixture()

	_, err := svc.Obtener(context.Background(), TablaLineas, 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCatalogoActualizarCoercionaPadre(t *testing.T) {
	svc, _, clases := newCatalogoFixture()
	ctx := context.Background()

	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Bebidas"}))
	require.NoError(t, svc.Crear(ctx, TablaLineas, dto.GuardarCatalogoRequest{Razon: "Abarrotes"}))
	require.NoError(t, svc.Crear(ctx, TablaClases, dto.GuardarCatalogoRequest{
		Razon:         "Gaseosas",
		CodLineaPadre: codigoRef(1),
	}))

	require.NoError(t, svc.Actualizar(ctx, TablaClases, 1, dto.GuardarCatalogoRequest{
		Razon:         "Gaseosas y jugos",
		CodLineaPadre: codigoRef(2),
	}))

	assert.Equal(t, 2, clases.clases[1].CodLinea)
	assert.Equal(t, "Gaseosas y jugos", clases.clases[1].Nombre)
}
