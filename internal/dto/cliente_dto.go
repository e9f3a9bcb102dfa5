package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,max=100"`
	Email     string  `json:"email"     validate:"required,email,max=120"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
}

// ActualizarClienteRequest is a partial update: only non-nil fields are applied.
type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email,max=120"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}
