package auth

import "time"

// Claims es la información extraída de un token de sesión válido.
// El sitio tiene un solo rol real: admin del back office.
type Claims struct {
	Subject   string
	Admin     bool
	ExpiresAt time.Time
}
