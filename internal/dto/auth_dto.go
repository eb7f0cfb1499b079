package dto

// ── Request DTOs ─────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Clave   string `json:"clave"   validate:"required"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

// Principal is the authenticated identity stored in the session and returned
// by GET /api/user-info.
type Principal struct {
	ID             int    `json:"id"`
	Usuario        string `json:"usuario"`
	NombreCompleto string `json:"nombreCompleto"`
	Rol            string `json:"rol"`
}
