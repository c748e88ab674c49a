package entity

import "github.com/jhoicas/embutidos-web/internal/domain/permission"

// Géneros admitidos en el alta de usuarios.
const (
	GeneroMasculino = "Masculino"
	GeneroFemenino  = "Femenino"
)

// Nombres de rol usados para filtrar la lista de usuarios.
const (
	RolCliente    = "cliente"
	RolVendedor   = "vendedor"
	RolAdmin      = "admin"
	RolTrabajador = "trabajador"
)

// User usuario del sistema (administrador, vendedor, cliente o trabajador).
type User struct {
	ID                  string      `json:"_id"`
	Name                string      `json:"name"`
	CI                  int64       `json:"ci"`
	Email               string      `json:"email"`
	Birthdate           string      `json:"birthdate"`
	Gender              string      `json:"gender"`
	Role                Ref         `json:"role"`
	Permissions         []UserGrant `json:"permissions"`
	ContactInfo         ContactInfo `json:"contactInfo"`
	FailedLoginAttempts int         `json:"failedLoginAttempts"`
	AccountLocked       bool        `json:"accountLocked"`
}

// RoleName nombre del rol, venga poblado o no.
func (u User) RoleName() string {
	return u.Role.Label()
}

// ContactInfo datos de contacto.
type ContactInfo struct {
	Phone   int64  `json:"phone"`
	Address string `json:"address"`
}

// UserGrant permiso asignado a un usuario; Permission es el id del permiso.
type UserGrant struct {
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
}

// Role rol con sus permisos por defecto.
type Role struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// PermissionDef definición de permiso del catálogo del backend.
type PermissionDef struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserSession sesión registrada de un usuario. El backend no fija el esquema,
// así que se conserva como mapa.
type UserSession map[string]any

// Profile perfil del usuario autenticado (GET /auth/profile).
type Profile struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        Ref                `json:"role"`
	Permissions []permission.Grant `json:"permissions"`
}

// LoginResult respuesta del login (usuario/contraseña o QR).
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// QRCode respuesta de generación de QR de acceso.
type QRCode struct {
	QRCodeURL string `json:"qrCodeUrl"`
}
