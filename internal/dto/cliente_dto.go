package dto

import "time"

// ── Request DTOs ─────────────────────────────────────────────────────────────

type GuardarClienteRequest struct {
	TipoDoc   string `json:"tipoDoc"   validate:"required,len=1"`
	Documento string `json:"documento" validate:"required,max=12"`
	Razon     string `json:"razon"     validate:"required,max=200"`
	Direccion string `json:"direccion" validate:"max=200"`
	Celular   string `json:"celular"   validate:"max=10"`
	Email     string `json:"email"     validate:"omitempty,email,max=100"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type ClienteListItem struct {
	Codclie   int    `json:"codclie"`
	Documento string `json:"documento"`
	Razon     string `json:"razon"`
	Direccion string `json:"direccion"`
	Celular   string `json:"celular"`
	Email     string `json:"email"`
}

type ClienteResponse struct {
	Codclie   int       `json:"codclie"`
	TipoDoc   string    `json:"tipoDoc"`
	Documento string    `json:"documento"`
	Razon     string    `json:"razon"`
	Direccion string    `json:"direccion"`
	Celular   string    `json:"celular"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	Fecha     time.Time `json:"fecha"`
}
