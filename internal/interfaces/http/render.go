package http

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/navigation"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
	"github.com/jhoicas/embutidos-web/pkg/money"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// View datos comunes de todas las páginas. Data lleva la página del caso de uso.
type View struct {
	Title      string
	Path       string
	Nav        navigation.Nav
	Session    *session.Session
	FormToken  string
	Flash      string
	Error      string
	Warning    string
	Violations view.Violations
	// Form formulario a repintar; FormOnly oculta el listado.
	Form     any
	FormOnly bool
	// Kind qué formulario de la página es Form (producto, categoria, lote…).
	Kind string
	// Editing id de la fila cuyo formulario se repinta ("" = alta).
	Editing string
	Data    any
}

// Renderer pinta las plantillas embebidas; cada página se compone con layout.html.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parsea todas las plantillas al arrancar.
func NewRenderer() (*Renderer, error) {
	entries, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, path := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		if name == "layout" || strings.HasPrefix(name, "_") {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/_*.html", path)
		if err != nil {
			return nil, fmt.Errorf("render: plantilla %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render pinta la página name con el layout.
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, v View) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: plantilla %q no encontrada", name)
	}
	if v.Session == nil {
		v.Session = SessionFrom(c)
	}
	if v.Path == "" {
		v.Path = c.Path()
	}
	if v.Nav.Items == nil && v.Nav.Error == "" && v.Session.Authenticated() {
		v.Nav = navigation.Build(v.Session, v.Path)
	}
	if v.FormToken == "" {
		v.FormToken = formTokenFrom(c)
	}
	if v.Violations == nil {
		v.Violations = view.Violations{}
	}
	c.Status(status).Type("html", "utf-8")
	return t.Execute(c, v)
}

// Error página de error genérica.
func (r *Renderer) Error(c *fiber.Ctx, status int, msg string) error {
	return r.Render(c, status, "error", View{Title: "Error", Error: msg})
}

// ErrorHandler pinta los errores no manejados como página HTML.
func ErrorHandler(r *Renderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, msg := fiber.StatusInternalServerError, view.DefaultError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			msg = fe.Message
			if status == fiber.StatusNotFound {
				msg = "Página no encontrada"
			}
		}
		if rerr := r.Error(c, status, msg); rerr != nil {
			return c.Status(status).SendString(msg)
		}
		return nil
	}
}

// labels textos en español de los códigos que devuelve el backend.
var labels = map[string]string{
	entity.RangoDia:    "Hoy",
	entity.RangoSemana: "Esta semana",
	entity.RangoMes:    "Este mes",
	entity.RangoAnio:   "Este año",

	entity.MovimientoEntrada: "Entrada",
	entity.MovimientoSalida:  "Salida",
	entity.MovimientoAjuste:  "Ajuste",

	entity.LoteDisponible: "Disponible",
	entity.LoteAgotado:    "Agotado",
	entity.LoteDanado:     "Dañado",
	entity.LoteExpirado:   "Expirado",

	"pendiente":  "Pendiente",
	"completada": "Completada",
	"cancelada":  "Cancelada",
	"entregada":  "Entregada",
	"en_proceso": "En proceso",

	"alta":  "Alta",
	"media": "Media",
	"baja":  "Baja",

	entity.PagoEfectivo:      "Efectivo",
	entity.PagoTransferencia: "Transferencia",

	"productos":           "Productos",
	"clientes":            "Clientes",
	"cliente-especifico":  "Cliente específico",
	"deudas-por-vendedor": "Deudas por vendedor",
	"filtro-range":        "Rango de fechas",
	"filtro-month":        "Mes",
	"filtro-year":         "Año",
	"filtro-week":         "Última semana",

	"diario":  "Diario",
	"mensual": "Mensual",
}

var funcs = template.FuncMap{
	"can": can,
	"money": money.Format,
	"date":  func(d entity.Date) string { return d.Format() },
	"iso":   func(d entity.Date) string { return d.ISODate() },
	"t": func(key string) string {
		if l, ok := labels[key]; ok {
			return l
		}
		return key
	},
	"num": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	"dec": func(d decimal.Decimal) string { return d.String() },
	"int": func(n int64) string {
		if n == 0 {
			return ""
		}
		return strconv.FormatInt(n, 10)
	},
	"err": func(v view.Violations, field string) string { return v.Get(field) },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
	"field": func(prefix string, i int, name string) string {
		return prefix + "." + strconv.Itoa(i) + "." + name
	},
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict: número impar de argumentos")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: clave %v no es texto", kv[i])
			}
			m[k] = kv[i+1]
		}
		return m, nil
	},
	"productForm":  dto.ProductFormFrom,
	"categoryForm": dto.CategoryFormFrom,
	"stockForm":    dto.StockFormFrom,
	"batchForm":    dto.BatchFormFrom,
	"movementForm": dto.MovementFormFrom,
	"saleForm":     dto.SaleFormFrom,
	"userForm":     dto.UserFormFrom,
	"blank":        blankForm,
	"list":         func(items ...string) []string { return items },
	"saleLines": func(f dto.SaleForm) []dto.SaleLineForm {
		return padLines(f.Productos)
	},
	"presaleLines": func(f dto.PresaleForm) []dto.PresaleLineForm {
		return padLines(f.Productos)
	},
	"contains": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
}

// can falla con nombres fuera del catálogo para que una errata en una
// plantilla no oculte una sección en silencio.
func can(s *session.Session, name string) (bool, error) {
	p, ok := permission.Parse(name)
	if !ok {
		return false, fmt.Errorf("can: permiso desconocido %q", name)
	}
	return s.Can(p), nil
}

// minLines filas de producto que muestra como mínimo un formulario.
const minLines = 3

// padLines deja siempre una fila vacía al final y al menos minLines filas.
func padLines[T any](lines []T) []T {
	n := len(lines) + 1
	if n < minLines {
		n = minLines
	}
	out := make([]T, n)
	copy(out, lines)
	return out
}

// blankForm formulario vacío de cada tipo, para las altas.
func blankForm(kind string) (any, error) {
	switch kind {
	case "producto":
		return dto.ProductForm{}, nil
	case "categoria":
		return dto.CategoryForm{}, nil
	case "stock":
		return dto.StockForm{}, nil
	case "lote":
		return dto.BatchForm{}, nil
	case "movimiento":
		return dto.MovementForm{}, nil
	case "venta":
		return dto.SaleForm{}, nil
	case "preventa":
		return dto.PresaleForm{}, nil
	case "pago":
		return dto.PaymentForm{}, nil
	case "usuario":
		return dto.UserForm{}, nil
	default:
		return nil, fmt.Errorf("blank: formulario %q desconocido", kind)
	}
}
