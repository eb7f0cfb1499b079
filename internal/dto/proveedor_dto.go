package dto

// ── Request DTOs ─────────────────────────────────────────────────────────────

type GuardarProveedorRequest struct {
	TipoDoc   string `json:"tipoDoc"   validate:"required,len=1"`
	Documento string `json:"documento" validate:"required,max=12"`
	Razon     string `json:"razon"     validate:"required,max=60"`
	Direccion string `json:"direccion" validate:"max=60"`
	Telefono  string `json:"telefono"  validate:"max=10"`
	Email     string `json:"email"     validate:"omitempty,email,max=30"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type ProveedorListItem struct {
	CodProv   string `json:"codProv"`
	Documento string `json:"documento"`
	Razon     string `json:"razon"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

type ProveedorResponse struct {
	CodProv   string `json:"codProv"`
	TipoDoc   string `json:"tipoDoc"`
	Documento string `json:"documento"`
	Razon     string `json:"razon"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Eliminado bool   `json:"eliminado"`
}
