package dto

import (
	"strconv"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// LoginForm credenciales del login.
type LoginForm struct {
	Email      string `form:"email" validate:"email" msg:"Email inválido"`
	Password   string `form:"password" validate:"min=6" msg:"La contraseña debe tener al menos 6 caracteres"`
	RememberMe bool   `form:"rememberMe"`
}

// LoginPayload cuerpo de POST /auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserForm alta/edición de usuario. En edición la contraseña es opcional.
type UserForm struct {
	Name      string `form:"name" validate:"min=2" msg:"El nombre debe tener al menos 2 caracteres."`
	Email     string `form:"email" validate:"email" msg:"Dirección de correo electrónico inválida."`
	Password  string `form:"password" validate:"omitempty,min=6" msg:"La contraseña debe tener al menos 6 caracteres."`
	CI        int64  `form:"ci" validate:"gt=0" msg:"El CI debe ser un número positivo."`
	Birthdate string `form:"birthdate" validate:"datetime=2006-01-02,adult" msg:"datetime:La fecha de nacimiento debe estar en formato YYYY-MM-DD.|adult:Debe ser mayor de 18 años para registrarse."`
	Gender    string `form:"gender" validate:"oneof=Masculino Femenino" msg:"Seleccione un género."`
	Role      string `form:"role" validate:"required" msg:"Seleccione un rol."`
	Phone     int64  `form:"phone" validate:"gt=0" msg:"El teléfono debe ser un número positivo."`
	Address   string `form:"address" validate:"min=5" msg:"La dirección debe tener al menos 5 caracteres."`
}

// UserPayload cuerpo de POST/PUT /users.
type UserPayload struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Password    string             `json:"password,omitempty"`
	CI          int64              `json:"ci"`
	Birthdate   string             `json:"birthdate"`
	Gender      string             `json:"gender"`
	Role        string             `json:"role"`
	ContactInfo entity.ContactInfo `json:"contactInfo"`
}

// Payload convierte el formulario ya validado.
func (f UserForm) Payload() UserPayload {
	return UserPayload{
		Name:        trim(f.Name),
		Email:       trim(f.Email),
		Password:    f.Password,
		CI:          f.CI,
		Birthdate:   f.Birthdate,
		Gender:      f.Gender,
		Role:        f.Role,
		ContactInfo: entity.ContactInfo{Phone: f.Phone, Address: trim(f.Address)},
	}
}

// UserFormFrom rellena el formulario de edición (sin contraseña).
func UserFormFrom(u entity.User) UserForm {
	return UserForm{
		Name:      u.Name,
		Email:     u.Email,
		CI:        u.CI,
		Birthdate: u.Birthdate,
		Gender:    u.Gender,
		Role:      u.Role.ID,
		Phone:     u.ContactInfo.Phone,
		Address:   u.ContactInfo.Address,
	}
}

// UserFilter filtros de la lista de usuarios.
type UserFilter struct {
	Q    string `query:"q"`
	Rol  string `query:"rol"`
	Page int    `query:"page"`
}

// PermissionsForm edición de los permisos de un usuario: All lista los ids
// mostrados en pantalla y Granted los marcados.
type PermissionsForm struct {
	All     []string `form:"all"`
	Granted []string `form:"granted"`
}

// PermissionsPayload cuerpo de PUT /users/:id/permissions.
type PermissionsPayload struct {
	Permissions []entity.UserGrant `json:"permissions"`
}

// Payload un grant por cada permiso mostrado.
func (f PermissionsForm) Payload() PermissionsPayload {
	granted := make(map[string]bool, len(f.Granted))
	for _, id := range f.Granted {
		granted[id] = true
	}
	out := make([]entity.UserGrant, 0, len(f.All))
	for _, id := range f.All {
		out = append(out, entity.UserGrant{Permission: id, Granted: granted[id]})
	}
	return PermissionsPayload{Permissions: out}
}

// FormatInt muestra enteros del formulario; cero se muestra vacío.
func FormatInt(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}
