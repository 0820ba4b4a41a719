package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrInvalidCredentials se devuelve igual para usuario inexistente y para
	// password incorrecto: el login no debe revelar cuál de los dos falló.
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	ErrUsernameTaken = errors.New("el username ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
)
