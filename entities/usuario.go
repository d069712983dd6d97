package entities

import "time"

// UsuarioID is the fixed key of the single logged-in-user row.
const UsuarioID uint = 1

// Usuario holds the device's logged-in operator. Login is a local
// placeholder; the name is stamped on outgoing apontamentos.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `json:"nome"`
	Logado    bool      `json:"logado"`
	UpdatedAt time.Time `json:"updated_at"`
}
