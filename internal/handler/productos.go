package handler

import (
	"net/http"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar GET /api/productos
func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("search"))
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/productos/:id
func (h *ProductosHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	respondFetch(c, resp, err)
}

// Crear POST /api/productos — the product code is assigned server-side; the
// body's codigo field is only the UI preview.
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.GuardarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Crear(c.Request.Context(), req))
}

// Actualizar PUT /api/productos/:id — recomputes the derived base values.
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.GuardarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Actualizar(c.Request.Context(), c.Param("id"), req))
}

// Eliminar PATCH /api/productos/delete/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	respondMutation(c, h.svc.Eliminar(c.Request.Context(), c.Param("id")))
}

// Config GET /api/productos-config — form reference data plus next code.
func (h *ProductosHandler) Config(c *gin.Context) {
	resp, err := h.svc.Config(c.Request.Context())
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
