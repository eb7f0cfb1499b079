package dto

// ── Request DTOs ─────────────────────────────────────────────────────────────

// GuardarCatalogoRequest serves both líneas and clases. CodLineaPadre is only
// meaningful (and required) for clases; the service enforces that per table.
type GuardarCatalogoRequest struct {
	Razon         string  `json:"razon" validate:"required,max=50"`
	CodLineaPadre *Codigo `json:"codLineaPadre"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

// CatalogoListItem is one row of GET /api/:tabla. LineaPadre is only populated
// for clases (the joined parent line name).
type CatalogoListItem struct {
	ID         int     `json:"ID"`
	Nombre     string  `json:"nombre"`
	LineaPadre *string `json:"lineaPadre,omitempty"`
}

// CatalogoResponse is the fetch-one row. CodLinea is nil for líneas.
type CatalogoResponse struct {
	ID       int    `json:"ID"`
	Nombre   string `json:"nombre"`
	CodLinea *int   `json:"codLinea,omitempty"`
	Activo   bool   `json:"activo"`
}
