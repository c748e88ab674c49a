package http

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestLabels_FiltroDeFechasNoPisaRangoDelDashboard(t *testing.T) {
	translate := funcs["t"].(func(string) string)

	assert.Equal(t, "Esta semana", translate(entity.RangoSemana))
	assert.Equal(t, "Este mes", translate(entity.RangoMes))
	assert.Equal(t, "Este año", translate(entity.RangoAnio))

	assert.Equal(t, "Última semana", translate("filtro-week"))
	assert.Equal(t, "Mes", translate("filtro-month"))
	assert.Equal(t, "Año", translate("filtro-year"))
	assert.Equal(t, "Rango de fechas", translate("filtro-range"))

	assert.Equal(t, "codigo-raro", translate("codigo-raro"))
}

func TestNewRenderer_ParseaTodasLasPaginas(t *testing.T) {
	_, err := NewRenderer()
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos en plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestCan_PermisoDesconocido_Error(t *testing.T) {
	ok, err := can(nil, "ver_productoz")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCan_PermisoDelCatalogoSinSesion_NoConcede(t *testing.T) {
	ok, err := can(nil, string(permission.VerProductos))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCan_ErrataEnPlantilla_FallaLaEjecucion(t *testing.T) {
	tpl := template.Must(template.New("x").Funcs(funcs).Parse(`{{if can .S "ver_productoz"}}oculto{{end}}`))

	var buf bytes.Buffer
	err := tpl.Execute(&buf, map[string]any{"S": (*session.Session)(nil)})
	assert.Error(t, err)
}
