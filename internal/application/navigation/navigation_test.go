package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

func hrefs(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Href)
	}
	return out
}

func TestFilter_SoloEntradasConcedidas(t *testing.T) {
	items := []Item{
		{Name: "Productos", Href: "/products", Permission: permission.VerProductos},
		{Name: "Ventas", Href: "/ventas", Permission: permission.VerVentas},
	}
	set, _ := permission.NewSet([]permission.Grant{
		{Name: "ver_productos", Granted: true},
		{Name: "ver_ventas", Granted: false},
	})

	got := Filter(items, set)
	require.Len(t, got, 1)
	assert.Equal(t, "Productos", got[0].Name)
}

func TestFilter_PermisoAusenteNoSeMuestra(t *testing.T) {
	set := permission.Of(permission.VerPagos)
	assert.Equal(t, []string{"/pagos"}, hrefs(Filter(Menu, set)))
}

func TestFilter_MantieneElOrdenDelCatalogo(t *testing.T) {
	set := permission.Of(permission.VerPredicciones, permission.VerResumenDashboard, permission.VerVentas)
	assert.Equal(t, []string{"/dashboard", "/ventas", "/predicciones"}, hrefs(Filter(Menu, set)))
}

func TestMenu_OchoEntradasConPermisoUnico(t *testing.T) {
	require.Len(t, Menu, 8)
	seen := map[permission.Permission]bool{}
	for _, it := range Menu {
		_, ok := permission.Parse(string(it.Permission))
		assert.True(t, ok, "permiso fuera del catálogo: %s", it.Permission)
		assert.False(t, seen[it.Permission])
		seen[it.Permission] = true
	}
}

func TestBuild_ConPerfilMarcaEntradaActiva(t *testing.T) {
	sess := session.New("tok", &entity.Profile{Name: "Ana"}, permission.Of(permission.VerProductos, permission.VerVentas))

	nav := Build(sess, "/ventas/abc")
	assert.Empty(t, nav.Error)
	assert.Equal(t, []string{"/products", "/ventas"}, hrefs(nav.Items))
	assert.Equal(t, "/ventas", nav.Active)
}

func TestBuild_PerfilFallido_SinEntradasYConError(t *testing.T) {
	sess := session.WithoutProfile("tok", errors.New("timeout"))

	nav := Build(sess, "/dashboard")
	assert.Empty(t, nav.Items)
	assert.Equal(t, ErrorMessage, nav.Error)
}
