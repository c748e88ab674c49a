// Package navigation arma el menú lateral a partir de los permisos de la sesión.
package navigation

import (
	"strings"

	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// ErrorMessage texto que se muestra en lugar del menú si no se pudo cargar el perfil.
const ErrorMessage = "Error al cargar el menú"

// Item entrada del menú. Cada entrada exige exactamente un permiso.
type Item struct {
	Name       string
	Href       string
	Icon       string
	Permission permission.Permission
}

// Menu catálogo estático del menú, en orden de aparición.
var Menu = []Item{
	{Name: "Dashboard", Href: "/dashboard", Icon: "home", Permission: permission.VerResumenDashboard},
	{Name: "Usuarios", Href: "/users", Icon: "users", Permission: permission.VerUsuarios},
	{Name: "Productos", Href: "/products", Icon: "package", Permission: permission.VerProductos},
	{Name: "Inventario", Href: "/inventario", Icon: "clipboard", Permission: permission.VerMovimientosInventario},
	{Name: "Ventas", Href: "/ventas", Icon: "cart", Permission: permission.VerVentas},
	{Name: "Pagos", Href: "/pagos", Icon: "card", Permission: permission.VerPagos},
	{Name: "Reportes", Href: "/reportes", Icon: "chart", Permission: permission.VerReportesProductos},
	{Name: "Predicciones", Href: "/predicciones", Icon: "trend", Permission: permission.VerPredicciones},
}

// Filter devuelve la subsecuencia de items cuyo permiso está concedido, manteniendo el orden.
func Filter(items []Item, perms permission.Set) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if perms.Has(it.Permission) {
			out = append(out, it)
		}
	}
	return out
}

// Nav menú listo para pintar.
type Nav struct {
	Items  []Item
	Active string // href de la entrada activa
	Error  string
}

// Build arma el menú de la sesión. Si el perfil falló no se muestra ninguna entrada.
func Build(sess *session.Session, currentPath string) Nav {
	if sess.ProfileErr() != nil || sess.Profile() == nil {
		return Nav{Error: ErrorMessage}
	}
	items := Filter(Menu, sess.Permissions())
	return Nav{Items: items, Active: activeHref(items, currentPath)}
}

func activeHref(items []Item, path string) string {
	for _, it := range items {
		if path == it.Href || strings.HasPrefix(path, it.Href+"/") {
			return it.Href
		}
	}
	return ""
}
