package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// UsersPage lista de usuarios con roles y catálogo de permisos.
type UsersPage struct {
	State       view.State
	Filter      dto.UserFilter
	Users       view.Page[entity.User]
	Roles       []entity.Role
	Permissions []entity.PermissionDef
}

// UserDetailPage ficha de un usuario: datos, permisos y sesiones.
type UserDetailPage struct {
	State       view.State
	User        entity.User
	Sessions    []entity.UserSession
	Permissions []entity.PermissionDef
	QR          entity.QRCode
}

// Granted indica si el usuario tiene concedido el permiso (por id).
func (p UserDetailPage) Granted(permissionID string) bool {
	for _, g := range p.User.Permissions {
		if g.Permission == permissionID {
			return g.Granted
		}
	}
	return false
}

// rolePermission permiso que habilita ver a los usuarios de cada rol.
var rolePermission = map[string]permission.Permission{
	entity.RolAdmin:      permission.VerAdmins,
	entity.RolCliente:    permission.VerClientes,
	entity.RolVendedor:   permission.VerVendedores,
	entity.RolTrabajador: permission.VerTrabajadores,
}

// UserUseCase administración de usuarios.
type UserUseCase struct {
	api      ports.UserService
	auth     ports.AuthService
	docs     ports.DocumentRenderer
	composer *view.Composer
}

// NewUserUseCase construye el caso de uso. docs genera la tarjeta QR en PDF.
func NewUserUseCase(api ports.UserService, auth ports.AuthService, docs ports.DocumentRenderer, composer *view.Composer) *UserUseCase {
	return &UserUseCase{api: api, auth: auth, docs: docs, composer: composer}
}

// Load lote {usuarios, roles, permisos}; filtra por rol y búsqueda.
func (uc *UserUseCase) Load(ctx context.Context, sess *session.Session, f dto.UserFilter) UsersPage {
	page := UsersPage{Filter: f}
	var users []entity.User
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerUsuarios, view.Into("usuarios", &users, func(ctx context.Context) ([]entity.User, error) {
		return uc.api.Users(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerRoles, view.Into("roles", &page.Roles, func(ctx context.Context) ([]entity.Role, error) {
		return uc.api.Roles(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerPermisos, view.Into("permisos", &page.Permissions, func(ctx context.Context) ([]entity.PermissionDef, error) {
		return uc.api.Permissions(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los usuarios", tasks...)

	page.Users = view.Paginate(FilterUsers(sess, users, f), f.Page, view.DefaultPerPage)
	return page
}

// FilterUsers aplica rol y búsqueda (nombre, email o CI). Los usuarios de un
// rol con permiso de vista propio (ver_clientes, ver_admins…) solo aparecen si
// la sesión lo tiene.
func FilterUsers(sess *session.Session, users []entity.User, f dto.UserFilter) []entity.User {
	visible := make([]entity.User, 0, len(users))
	for _, u := range users {
		role := strings.ToLower(u.RoleName())
		if p, ok := rolePermission[role]; ok && !sess.Can(p) {
			continue
		}
		if f.Rol != "" && !strings.EqualFold(role, f.Rol) {
			continue
		}
		visible = append(visible, u)
	}
	return view.Search(visible, f.Q, func(u entity.User) []string {
		return []string{u.Name, u.Email, dto.FormatInt(u.CI)}
	})
}

// Detail ficha de un usuario con sus sesiones y el catálogo de permisos.
func (uc *UserUseCase) Detail(ctx context.Context, sess *session.Session, id string) UserDetailPage {
	var page UserDetailPage
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerUsuarioID, view.Into("usuario", &page.User, func(ctx context.Context) (entity.User, error) {
		return uc.api.User(ctx, token, id)
	}))
	tasks = when(tasks, sess, permission.VerSesionesUsuario, view.Into("sesiones", &page.Sessions, func(ctx context.Context) ([]entity.UserSession, error) {
		return uc.api.Sessions(ctx, token, id)
	}))
	tasks = when(tasks, sess, permission.VerPermisos, view.Into("permisos", &page.Permissions, func(ctx context.Context) ([]entity.PermissionDef, error) {
		return uc.api.Permissions(ctx, token)
	}))
	if len(tasks) == 0 {
		page.State = view.ErrorState(domain.ErrForbidden, "No tienes permiso para ver este usuario.")
		return page
	}
	page.State = uc.composer.Load(ctx, "Error al cargar el usuario", tasks...)
	return page
}

// Roles opciones del selector de rol del formulario.
func (uc *UserUseCase) Roles(ctx context.Context, sess *session.Session) []entity.Role {
	if !sess.Can(permission.VerRoles) {
		return nil
	}
	roles, err := uc.api.Roles(ctx, sess.Token())
	if err != nil {
		return nil
	}
	return roles
}

// CreateUser alta de usuario; la contraseña es obligatoria.
func (uc *UserUseCase) CreateUser(ctx context.Context, sess *session.Session, in dto.UserForm, f dto.UserFilter) (UsersPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearUsuario, "crear usuarios"); !ok {
		return UsersPage{}, res
	}
	return uc.submit(ctx, sess, f, view.Mutation{
		Input: &in,
		Check: func() view.Violations {
			v := view.Violations{}
			if in.Password == "" {
				v.Add("password", "La contraseña debe tener al menos 6 caracteres.")
			}
			return v
		},
		Call:     func(ctx context.Context) error { return uc.api.CreateUser(ctx, sess.Token(), in.Payload()) },
		Success:  "Usuario creado exitosamente",
		Fallback: "Error al crear el usuario",
	})
}

// UpdateUser edición; sin contraseña se conserva la actual.
func (uc *UserUseCase) UpdateUser(ctx context.Context, sess *session.Session, id string, in dto.UserForm, f dto.UserFilter) (UsersPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarUsuarioID, "actualizar usuarios"); !ok {
		return UsersPage{}, res
	}
	return uc.submit(ctx, sess, f, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateUser(ctx, sess.Token(), id, in.Payload()) },
		Success:  "Usuario actualizado exitosamente",
		Fallback: "Error al actualizar el usuario",
	})
}

// DeleteUser baja de usuario.
func (uc *UserUseCase) DeleteUser(ctx context.Context, sess *session.Session, id string, f dto.UserFilter) (UsersPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarUsuarioID, "eliminar usuarios"); !ok {
		return UsersPage{}, res
	}
	return uc.submit(ctx, sess, f, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteUser(ctx, sess.Token(), id) },
		Success:  "Usuario eliminado exitosamente",
		Fallback: "Error al eliminar el usuario",
	})
}

// UnlockUser desbloquea una cuenta bloqueada por intentos fallidos.
func (uc *UserUseCase) UnlockUser(ctx context.Context, sess *session.Session, id string, f dto.UserFilter) (UsersPage, view.Result) {
	if res, ok := allowed(sess, permission.DesbloquearCuenta, "desbloquear cuentas"); !ok {
		return UsersPage{}, res
	}
	return uc.submit(ctx, sess, f, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.UnlockUser(ctx, sess.Token(), id) },
		Success:  "Cuenta desbloqueada exitosamente",
		Fallback: "Error al desbloquear la cuenta",
	})
}

// UpdatePermissions reemplaza los permisos concedidos al usuario y recarga su ficha.
func (uc *UserUseCase) UpdatePermissions(ctx context.Context, sess *session.Session, id string, in dto.PermissionsForm) (UserDetailPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarPermisosUsuario, "actualizar permisos"); !ok {
		return UserDetailPage{}, res
	}
	var page UserDetailPage
	res := uc.composer.Submit(ctx, view.Mutation{
		Call: func(ctx context.Context) error { return uc.api.UpdatePermissions(ctx, sess.Token(), id, in.Payload()) },
		Refetch: func(ctx context.Context) view.State {
			page = uc.Detail(ctx, sess, id)
			return page.State
		},
		Success:  "Permisos actualizados exitosamente",
		Fallback: "Error al actualizar los permisos",
	})
	return page, res
}

// GenerateQR genera el QR de acceso del usuario y lo deja en su ficha.
func (uc *UserUseCase) GenerateQR(ctx context.Context, sess *session.Session, id string) (UserDetailPage, view.Result) {
	if res, ok := allowed(sess, permission.GenerarQR, "generar códigos QR"); !ok {
		return UserDetailPage{}, res
	}
	var (
		page UserDetailPage
		qr   entity.QRCode
	)
	res := uc.composer.Submit(ctx, view.Mutation{
		Call: func(ctx context.Context) error {
			var err error
			qr, err = uc.auth.GenerateQR(ctx, sess.Token(), id)
			return err
		},
		Refetch: func(ctx context.Context) view.State {
			page = uc.Detail(ctx, sess, id)
			return page.State
		},
		Success:  "Código QR generado exitosamente",
		Fallback: "Error al generar el código QR",
	})
	page.QR = qr
	return page, res
}

// QRCard tarjeta PDF con el nombre del usuario y su QR de acceso.
func (uc *UserUseCase) QRCard(ctx context.Context, sess *session.Session, id string) ([]byte, string, error) {
	if !sess.Can(permission.GenerarQR) {
		return nil, "", domain.ErrForbidden
	}
	user, err := uc.api.User(ctx, sess.Token(), id)
	if err != nil {
		return nil, "", err
	}
	qr, err := uc.auth.GenerateQR(ctx, sess.Token(), id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.docs.QRCardPDF(user, qr)
	if err != nil {
		return nil, "", fmt.Errorf("tarjeta QR: %w", err)
	}
	return pdf, fmt.Sprintf("qr-%s.pdf", id), nil
}

func (uc *UserUseCase) submit(ctx context.Context, sess *session.Session, f dto.UserFilter, m view.Mutation) (UsersPage, view.Result) {
	var page UsersPage
	m.Refetch = func(ctx context.Context) view.State {
		page = uc.Load(ctx, sess, f)
		return page.State
	}
	res := uc.composer.Submit(ctx, m)
	return page, res
}
