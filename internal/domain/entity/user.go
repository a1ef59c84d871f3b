package entity

// User operador de la terminal. Solo se usa para sellar CreatedBy y la bitácora.
type User struct {
	ID   string
	Name string
}

// SystemUserID usuario por defecto cuando el cliente no envía uno.
const SystemUserID = "system"
