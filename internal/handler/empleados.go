package handler

import (
	"net/http"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpleadosHandler struct{ svc service.EmpleadoService }

func NewEmpleadosHandler(svc service.EmpleadoService) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc}
}

// Listar GET /api/empleados
func (h *EmpleadosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("search"))
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/empleados/:id
func (h *EmpleadosHandler) Obtener(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	respondFetch(c, resp, err)
}

// Crear POST /api/empleados — the employee code is assigned server-side.
func (h *EmpleadosHandler) Crear(c *gin.Context) {
	var req dto.GuardarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Crear(c.Request.Context(), req))
}

// Actualizar PUT /api/empleados/:id
func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var req dto.GuardarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Actualizar(c.Request.Context(), id, req))
}

// Eliminar PATCH /api/empleados/delete/:id
func (h *EmpleadosHandler) Eliminar(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	respondMutation(c, h.svc.Eliminar(c.Request.Context(), id))
}

// ListarTipos GET /api/tipo-empleado
func (h *EmpleadosHandler) ListarTipos(c *gin.Context) {
	resp, err := h.svc.ListarTipos(c.Request.Context())
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
