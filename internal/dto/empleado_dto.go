package dto

// ── Request DTOs ─────────────────────────────────────────────────────────────

// GuardarEmpleadoRequest keeps the legacy field name "razon" for the employee
// name — the maestros form reuses one template across entities.
type GuardarEmpleadoRequest struct {
	Documento string     `json:"documento" validate:"max=12"`
	Razon     string     `json:"razon"     validate:"required,max=50"`
	Celular   string     `json:"celular"   validate:"max=10"`
	Tipo      CodigoNulo `json:"tipo"`
	Direccion string     `json:"direccion" validate:"max=60"`
	Email     string     `json:"email"     validate:"omitempty,email,max=100"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type EmpleadoListItem struct {
	Codemp     int     `json:"codemp"`
	Documento  string  `json:"documento"`
	Nombre     string  `json:"nombre"`
	Celular    string  `json:"celular"`
	Direccion  string  `json:"direccion"`
	Email      string  `json:"email"`
	Tipo       *int    `json:"tipo"`
	TipoNombre *string `json:"tipoNombre"`
}

type EmpleadoResponse struct {
	Codemp    int    `json:"codemp"`
	Documento string `json:"documento"`
	Nombre    string `json:"nombre"`
	Celular   string `json:"celular"`
	Tipo      *int   `json:"tipo"`
	Direccion string `json:"direccion"`
	Email     string `json:"email"`
	Activo    bool   `json:"activo"`
}

type TipoEmpleadoResponse struct {
	IDTipo      int    `json:"idTipo"`
	Descripcion string `json:"descripcion"`
}
