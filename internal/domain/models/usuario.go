package models

type Usuario struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Nombre       string `json:"nombre"`
	PasswordHash string `json:"-"`
	Activo       bool   `json:"activo"`
}
