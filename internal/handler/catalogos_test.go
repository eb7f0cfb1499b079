package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogoService records the table each call was dispatched to.
type fakeCatalogoService struct {
	ultimaTabla service.Tabla
	crearErr    error
}

func (f *fakeCatalogoService) Buscar(_ context.Context, t service.Tabla, _ string) ([]dto.CatalogoListItem, error) {
	f.ultimaTabla = t
	return []dto.CatalogoListItem{{ID: 1, Nombre: "Abarrotes"}}, nil
}

func (f *fakeCatalogoService) Obtener(_ context.Context, t service.Tabla, id int) (*dto.CatalogoResponse, error) {
	f.ultimaTabla = t
	if id != 1 {
		return nil, service.ErrNoEncontrado
	}
	return &dto.CatalogoResponse{ID: 1, Nombre: "Abarrotes", Activo: true}, nil
}

func (f *fakeCatalogoService) Crear(_ context.Context, t service.Tabla, _ dto.GuardarCatalogoRequest) error {
	f.ultimaTabla = t
	return f.crearErr
}

func (f *fakeCatalogoService) Actualizar(_ context.Context, t service.Tabla, _ int, _ dto.GuardarCatalogoRequest) error {
	f.ultimaTabla = t
	return f.crearErr
}

func (f *fakeCatalogoService) Eliminar(_ context.Context, t service.Tabla, _ int) error {
	f.ultimaTabla = t
	return nil
}

var _ service.CatalogoService = (*fakeCatalogoService)(nil)

// newCatalogoRouter registers the generic routes next to a static sibling the
// way the real router does, so the tests exercise gin's static-over-param
// precedence.
func newCatalogoRouter(fake *fakeCatalogoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogosHandler(fake)

	api := r.Group("/api")
	api.GET("/productos", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ruta": "productos"})
	})
	api.GET("/:tabla", h.Listar)
	api.POST("/:tabla", h.Crear)
	api.GET("/:tabla/:id", h.Obtener)
	api.PUT("/:tabla/:id", h.Actualizar)
	api.PATCH("/:tabla/delete/:id", h.Eliminar)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogoTokenDesconocido(t *testing.T) {
	r := newCatalogoRouter(&fakeCatalogoService{})

	for _, path := range []string{"/api/facturas", "/api/usuarios"} {
		w := doRequest(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
	}
}

func TestCatalogoRutaEstaticaTienePrioridad(t *testing.T) {
	fake := &fakeCatalogoService{}
	r := newCatalogoRouter(fake)

	w := doRequest(t, r, http.MethodGet, "/api/productos", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "productos", resp["ruta"])
}

func TestCatalogoListarDespachaPorToken(t *testing.T) {
	fake := &fakeCatalogoService{}
	r := newCatalogoRouter(fake)

	w := doRequest(t, r, http.MethodGet, "/api/clases", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.TablaClases, fake.ultimaTabla)

	w = doRequest(t, r, http.MethodGet, "/api/lineas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.TablaLineas, fake.ultimaTabla)
}

func TestCatalogoObtenerNoEncontrado(t *testing.T) {
	r := newCatalogoRouter(&fakeCatalogoService{})

	w := doRequest(t, r, http.MethodGet, "/api/lineas/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestCatalogoCrearSinPadre(t *testing.T) {
	fake := &fakeCatalogoService{crearErr: service.ErrLineaPadreRequerida}
	r := newCatalogoRouter(fake)

	w := doRequest(t, r, http.MethodPost, "/api/clases", `{"razon":"Gaseosas"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogoCrearExitoso(t *testing.T) {
	fake := &fakeCatalogoService{}
	r := newCatalogoRouter(fake)

	w := doRequest(t, r, http.MethodPost, "/api/lineas", `{"razon":"Abarrotes"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestCatalogoEliminar(t *testing.T) {
	fake := &fakeCatalogoService{}
	r := newCatalogoRouter(fake)

	w := doRequest(t, r, http.MethodPatch, "/api/clases/delete/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.TablaClases, fake.ultimaTabla)
}
