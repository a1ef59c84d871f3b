package dto

// UserResponse operador de la terminal.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
