package handler

import (
	"errors"
	"net/http"

	"github.com/Odenfis/taytaApp/internal/apierror"
	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogosHandler serves the generic /api/:tabla routes for líneas and
// clases. Gin's radix tree gives static segments priority over :tabla, so the
// entity routes can never be shadowed; for tokens outside the closed set this
// handler answers 404 itself.
type CatalogosHandler struct{ svc service.CatalogoService }

func NewCatalogosHandler(svc service.CatalogoService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc}
}

// tabla resolves the route token. Writes the 404 response for unknown tokens;
// callers return immediately on !ok.
func (h *CatalogosHandler) tabla(c *gin.Context) (service.Tabla, bool) {
	t, ok := service.TablaPorToken(c.Param("tabla"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Recurso no encontrado"))
	}
	return t, ok
}

// Listar GET /api/:tabla
func (h *CatalogosHandler) Listar(c *gin.Context) {
	t, ok := h.tabla(c)
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), t, c.Query("search"))
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/:tabla/:id
func (h *CatalogosHandler) Obtener(c *gin.Context) {
	t, ok := h.tabla(c)
	if !ok {
		return
	}
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), t, id)
	respondFetch(c, resp, err)
}

// Crear POST /api/:tabla
func (h *CatalogosHandler) Crear(c *gin.Context) {
	t, ok := h.tabla(c)
	if !ok {
		return
	}
	var req dto.GuardarCatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Crear(c.Request.Context(), t, req); err != nil {
		h.responderErrorEscritura(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK())
}

// Actualizar PUT /api/:tabla/:id
func (h *CatalogosHandler) Actualizar(c *gin.Context) {
	t, ok := h.tabla(c)
	if !ok {
		return
	}
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var req dto.GuardarCatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), t, id, req); err != nil {
		h.responderErrorEscritura(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK())
}

// Eliminar PATCH /api/:tabla/delete/:id
func (h *CatalogosHandler) Eliminar(c *gin.Context) {
	t, ok := h.tabla(c)
	if !ok {
		return
	}
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	respondMutation(c, h.svc.Eliminar(c.Request.Context(), t, id))
}

// responderErrorEscritura distinguishes a missing parent line (caller fault)
// from a store failure.
func (h *CatalogosHandler) responderErrorEscritura(c *gin.Context, err error) {
	if errors.Is(err, service.ErrLineaPadreRequerida) {
		c.JSON(http.StatusBadRequest, apierror.Fail(err.Error()))
		return
	}
	logStoreError(c, err)
	c.JSON(http.StatusInternalServerError, apierror.Fail(err.Error()))
}
