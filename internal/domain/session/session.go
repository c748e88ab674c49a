// Package session modela la sesión del usuario durante una petición: el token
// de la cookie y el perfil (con sus permisos ya validados).
package session

import (
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
)

// Session es de solo lectura una vez construida.
type Session struct {
	token      string
	profile    *entity.Profile
	perms      permission.Set
	profileErr error
}

// Anonymous sesión sin token (pantalla de login).
func Anonymous() *Session {
	return &Session{}
}

// New sesión autenticada con su perfil y el conjunto de permisos validado.
func New(token string, profile *entity.Profile, perms permission.Set) *Session {
	return &Session{token: token, profile: profile, perms: perms}
}

// WithoutProfile sesión con token válido cuyo perfil no se pudo cargar.
// No concede ningún permiso.
func WithoutProfile(token string, err error) *Session {
	return &Session{token: token, profileErr: err}
}

// Token token de la sesión ("" si es anónima).
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// Authenticated indica si hay token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Profile perfil cargado o nil.
func (s *Session) Profile() *entity.Profile {
	if s == nil {
		return nil
	}
	return s.profile
}

// ProfileErr error al cargar el perfil, si lo hubo.
func (s *Session) ProfileErr() error {
	if s == nil {
		return nil
	}
	return s.profileErr
}

// Permissions conjunto de permisos concedidos.
func (s *Session) Permissions() permission.Set {
	if s == nil || s.profileErr != nil {
		return permission.Set{}
	}
	return s.perms
}

// Can indica si la sesión tiene el permiso. Sin perfil no se concede nada.
func (s *Session) Can(p permission.Permission) bool {
	return s.Permissions().Has(p)
}

// UserName nombre para mostrar en la cabecera.
func (s *Session) UserName() string {
	if p := s.Profile(); p != nil {
		return p.Name
	}
	return ""
}
