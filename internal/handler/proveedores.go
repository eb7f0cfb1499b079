package handler

import (
	"net/http"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Listar GET /api/proveedores
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("search"))
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/proveedores/:id
func (h *ProveedoresHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	respondFetch(c, resp, err)
}

// Crear POST /api/proveedores — the supplier code is assigned server-side.
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.GuardarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Crear(c.Request.Context(), req))
}

// Actualizar PUT /api/proveedores/:id
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	var req dto.GuardarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Actualizar(c.Request.Context(), c.Param("id"), req))
}

// Eliminar PATCH /api/proveedores/delete/:id
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	respondMutation(c, h.svc.Eliminar(c.Request.Context(), c.Param("id")))
}
