// Package permission define el catálogo cerrado de permisos del panel.
//
// El backend entrega los permisos del usuario como texto; se validan una sola vez
// al recibir el perfil (NewSet) y a partir de ahí el resto del código trabaja
// con el tipo Permission, nunca con cadenas sueltas.
package permission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Permission identificador de un permiso conocido.
type Permission string

// Usuarios, roles y permisos.
const (
	CrearUsuario              Permission = "crear_usuario"
	VerUsuarios               Permission = "ver_usuarios"
	VerUsuarioID              Permission = "ver_usuario_id"
	ActualizarUsuarioID       Permission = "actualizar_usuario_id"
	EliminarUsuarioID         Permission = "eliminar_usuario_id"
	ActualizarPermisosUsuario Permission = "actualizar_permisos_usuario"
	DesbloquearCuenta         Permission = "desbloquear_cuenta"
	VerSesionesUsuario        Permission = "ver_sesiones_usuario"
	GenerarQR                 Permission = "generar_qr"
	VerAdmins                 Permission = "ver_admins"
	VerClientes               Permission = "ver_clientes"
	VerVendedores             Permission = "ver_vendedores"
	VerTrabajadores           Permission = "ver_trabajadores"

	CrearRol           Permission = "crear_rol"
	VerRoles           Permission = "ver_roles"
	VerRolID           Permission = "ver_rol_id"
	ActualizarRolID    Permission = "actualizar_rol_id"
	EliminarRolID      Permission = "eliminar_rol_id"
	AgregarPermisosRol Permission = "agregar_permisos_rol"

	CrearPermiso        Permission = "crear_permiso"
	VerPermisos         Permission = "ver_permisos"
	VerPermisoID        Permission = "ver_permiso_id"
	ActualizarPermisoID Permission = "actualizar_permiso_id"
	EliminarPermisoID   Permission = "eliminar_permiso_id"
)

// Catálogo y ventas.
const (
	CrearProducto        Permission = "crear_producto"
	VerProductos         Permission = "ver_productos"
	VerProductoID        Permission = "ver_producto_id"
	ActualizarProductoID Permission = "actualizar_producto_id"
	EliminarProductoID   Permission = "eliminar_producto_id"

	CrearCategoria      Permission = "crear_categoria"
	VerCategorias       Permission = "ver_categorias"
	VerCategoriaID      Permission = "ver_categoria_id"
	EditarCategoriaID   Permission = "editar_categoria_id"
	EliminarCategoriaID Permission = "eliminar_categoria_id"

	CrearVenta        Permission = "crear_venta"
	VerVentas         Permission = "ver_ventas"
	VerVentaID        Permission = "ver_venta_id"
	ActualizarVentaID Permission = "actualizar_venta_id"
	EliminarVentaID   Permission = "eliminar_venta_id"

	CrearPago           Permission = "crear_pago"
	VerPagos            Permission = "ver_pagos"
	VerVentasPendientes Permission = "ver_ventas_pendientes"
)

// Inventario.
const (
	VerStock        Permission = "ver_stock"
	VerStockID      Permission = "ver_stock_id"
	EditarStockID   Permission = "editar_stock_id"
	EliminarStockID Permission = "eliminar_stock_id"

	CrearLoteProduccion        Permission = "crear_lote_produccion"
	VerLotesProduccion         Permission = "ver_lotes_produccion"
	VerLotesProduccionID       Permission = "ver_lotes_produccion_id"
	VerLoteProduccionID        Permission = "ver_lote_produccion_id"
	ActualizarLoteProduccionID Permission = "actualizar_lote_produccion_id"
	EliminarLoteProduccionID   Permission = "eliminar_lote_produccion_id"

	CrearMovimientoInventario        Permission = "crear_movimiento_inventario"
	VerMovimientosInventario         Permission = "ver_movimientos_inventario"
	VerMovimientoInventarioID        Permission = "ver_movimiento_inventario_id"
	ActualizarMovimientoInventarioID Permission = "actualizar_movimiento_inventario_id"
	EliminarMovimientoInventarioID   Permission = "eliminar_movimiento_inventario_id"

	VerParametros         Permission = "ver_parametros"
	VerParametroID        Permission = "ver_parametro_id"
	ActualizarParametroID Permission = "actualizar_parametro_id"

	VerAlertas     Permission = "ver_alertas"
	GenerarAlertas Permission = "generar_alertas"
)

// Dashboard, reportes y predicciones.
const (
	VerResumenDashboard            Permission = "ver_resumen_dashboard"
	VerProduccionDashboard         Permission = "ver_produccion_dashboard"
	VerVentasDashboard             Permission = "ver_ventas_dashboard"
	VerInventariosDashboard        Permission = "ver_inventarios_dashboard"
	VerAlertasDashboard            Permission = "ver_alertas_dashboard"
	VerPrediccionesDashboard       Permission = "ver_predicciones_dashboard"
	VerTopProductos                Permission = "ver_top_productos"
	VerAlertasActivasDashboard     Permission = "ver_alertas_activas_dashboard"
	VerReportesProductos           Permission = "ver_reportes_productos"
	VerReportesClientes            Permission = "ver_reportes_clientes"
	VerReportesClientesEspecificos Permission = "ver_reportes_clientes_especificos"
	VerReportesDeudasPorVendedor   Permission = "ver_reportes_deudas_por_vendedor"
	VerPredicciones                Permission = "ver_predicciones"
)

var known = map[Permission]struct{}{}

func init() {
	for _, g := range Groups {
		for _, p := range g.Permissions {
			known[p] = struct{}{}
		}
	}
}

// Group agrupación de permisos para la pantalla de edición de permisos de usuario.
type Group struct {
	Name        string
	Permissions []Permission
}

// Groups es el catálogo completo, en el orden en que se muestra.
var Groups = []Group{
	{"Usuarios", []Permission{CrearUsuario, VerUsuarios, VerUsuarioID, ActualizarUsuarioID, EliminarUsuarioID, ActualizarPermisosUsuario, DesbloquearCuenta, VerSesionesUsuario, GenerarQR}},
	{"Roles", []Permission{CrearRol, VerRoles, VerRolID, ActualizarRolID, EliminarRolID, AgregarPermisosRol}},
	{"Permisos", []Permission{CrearPermiso, VerPermisos, VerPermisoID, ActualizarPermisoID, EliminarPermisoID}},
	{"Productos", []Permission{CrearProducto, VerProductos, VerProductoID, ActualizarProductoID, EliminarProductoID}},
	{"Ventas", []Permission{CrearVenta, VerVentas, VerVentaID, ActualizarVentaID, EliminarVentaID}},
	{"Vendedores", []Permission{VerVendedores}},
	{"Administradores", []Permission{VerAdmins}},
	{"Clientes", []Permission{VerClientes}},
	{"Trabajadores", []Permission{VerTrabajadores}},
	{"Pagos", []Permission{CrearPago, VerPagos, VerVentasPendientes}},
	{"Stock", []Permission{VerStock, VerStockID, EditarStockID, EliminarStockID}},
	{"Lotes de Producción", []Permission{CrearLoteProduccion, VerLotesProduccion, VerLotesProduccionID, VerLoteProduccionID, ActualizarLoteProduccionID, EliminarLoteProduccionID}},
	{"Inventario", []Permission{CrearMovimientoInventario, VerMovimientosInventario, VerMovimientoInventarioID, ActualizarMovimientoInventarioID, EliminarMovimientoInventarioID}},
	{"Categorías", []Permission{CrearCategoria, VerCategorias, VerCategoriaID, EditarCategoriaID, EliminarCategoriaID}},
	{"Parámetros", []Permission{VerParametros, VerParametroID, ActualizarParametroID}},
	{"Alertas", []Permission{VerAlertas, GenerarAlertas}},
	{"Dashboard y Reportes", []Permission{VerResumenDashboard, VerProduccionDashboard, VerVentasDashboard, VerInventariosDashboard, VerAlertasDashboard, VerPrediccionesDashboard, VerTopProductos, VerAlertasActivasDashboard, VerReportesProductos, VerReportesClientes, VerReportesClientesEspecificos, VerReportesDeudasPorVendedor}},
	{"Predicciones", []Permission{VerPredicciones}},
}

// Parse convierte un nombre en Permission; solo los nombres del catálogo son válidos.
func Parse(name string) (Permission, bool) {
	p := Permission(name)
	_, ok := known[p]
	return p, ok
}

// Grant permiso tal como lo envía el backend en el perfil.
//
// Se aceptan tres formas: {"name":"x","granted":true}, {"permission":"x","granted":true}
// y la cadena "x" (concedido).
type Grant struct {
	Name    string `json:"name"`
	Granted bool   `json:"granted"`
}

func (g *Grant) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*g = Grant{Name: name, Granted: true}
		return nil
	}
	var raw struct {
		Name       string `json:"name"`
		Permission string `json:"permission"`
		Granted    *bool  `json:"granted"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("permiso: formato inesperado: %w", err)
	}
	g.Name = raw.Name
	if g.Name == "" {
		g.Name = raw.Permission
	}
	g.Granted = raw.Granted != nil && *raw.Granted
	return nil
}

// Set conjunto de permisos concedidos. El valor cero no concede nada.
type Set struct {
	granted map[Permission]bool
}

// NewSet valida los grants recibidos. Los nombres fuera del catálogo se devuelven
// en unknown para que quien llama los registre; no entran al conjunto.
// Si un nombre aparece repetido, gana la última aparición.
func NewSet(grants []Grant) (set Set, unknown []string) {
	set.granted = make(map[Permission]bool, len(grants))
	for _, g := range grants {
		p, ok := Parse(g.Name)
		if !ok {
			unknown = append(unknown, g.Name)
			continue
		}
		set.granted[p] = g.Granted
	}
	return set, unknown
}

// Of construye un conjunto con los permisos dados concedidos.
func Of(perms ...Permission) Set {
	s := Set{granted: make(map[Permission]bool, len(perms))}
	for _, p := range perms {
		s.granted[p] = true
	}
	return s
}

// Has es verdadero solo si el permiso existe en el conjunto y está concedido.
// Un permiso ausente equivale a no concedido.
func (s Set) Has(p Permission) bool {
	return s.granted[p]
}

// Any es verdadero si al menos uno de los permisos está concedido.
func (s Set) Any(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Granted lista los permisos concedidos, ordenados.
func (s Set) Granted() []Permission {
	out := make([]Permission, 0, len(s.granted))
	for p, ok := range s.granted {
		if ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
