package dto

// LoginRequest entrada para login por nombre de usuario.
// Password es opcional por compatibilidad: los usuarios migrados sin hash entran solo con nombre.
type LoginRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
