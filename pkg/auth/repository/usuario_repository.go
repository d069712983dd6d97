package repository

import "silvacollect/entities"

// UsuarioRepository manages the single logged-in-user row (fixed key).
type UsuarioRepository interface {
	Get() (*entities.Usuario, error)
	Save(u *entities.Usuario) error
}
