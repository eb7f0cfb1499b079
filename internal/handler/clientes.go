package handler

import (
	"net/http"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Listar GET /api/clientes
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("search"))
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/clientes/:id
func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	respondFetch(c, resp, err)
}

// Crear POST /api/clientes
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.GuardarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Crear(c.Request.Context(), req))
}

// Actualizar PUT /api/clientes/:id
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var req dto.GuardarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	respondMutation(c, h.svc.Actualizar(c.Request.Context(), id, req))
}

// Eliminar PATCH /api/clientes/delete/:id
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	respondMutation(c, h.svc.Eliminar(c.Request.Context(), id))
}
