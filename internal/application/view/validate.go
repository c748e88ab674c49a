package view

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Violations errores por campo; la clave es el nombre del campo en el formulario
// (tag form o query), con los índices de listas separados por puntos: "productos.0.cantidad".
type Violations map[string]string

// Has indica si el campo tiene error.
func (v Violations) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Get mensaje del campo ("" si no tiene).
func (v Violations) Get(field string) string { return v[field] }

// Add registra un error si el campo aún no tiene uno.
func (v Violations) Add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Merge incorpora otros errores sin pisar los existentes.
func (v Violations) Merge(other Violations) {
	for k, m := range other {
		v.Add(k, m)
	}
}

// BusinessLocation zona horaria para fechas de negocio.
var BusinessLocation = mustLocation("America/La_Paz")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// now se sustituye en tests.
var now = time.Now

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		return IsAdult(fl.Field().String(), now())
	})
	_ = v.RegisterValidation("decpos", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	})
	_ = v.RegisterValidation("decnonneg", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && !d.IsNegative()
	})
	return v
}

// IsAdult indica si quien nació en birth (YYYY-MM-DD) tiene 18 años cumplidos en at,
// contando en la zona horaria del negocio.
func IsAdult(birth string, at time.Time) bool {
	b, err := time.ParseInLocation("2006-01-02", birth, BusinessLocation)
	if err != nil {
		return false
	}
	today := at.In(BusinessLocation)
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return age >= 18
}

// Validate valida input (struct o puntero a struct) con sus tags validate.
// El tag msg de un campo reemplaza el mensaje por defecto; admite mensajes por
// regla separados por "|": `msg:"datetime:Formato inválido.|adult:Debe ser mayor de edad."`.
func Validate(input any) Violations {
	out := Violations{}
	err := validate.Struct(input)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("_", DefaultError)
		return out
	}
	root := reflect.TypeOf(input)
	for _, fe := range verrs {
		key := fieldKey(fe.Namespace())
		msg := pickMessage(customMessage(root, fe.StructNamespace()), fe.Tag())
		if msg == "" {
			msg = defaultMessage(fe)
		}
		out.Add(key, msg)
	}
	return out
}

// fieldKey "SaleForm.productos[0].cantidad" -> "productos.0.cantidad".
func fieldKey(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

// customMessage busca el tag msg siguiendo el namespace con nombres Go.
func customMessage(t reflect.Type, structNS string) string {
	parts := strings.Split(structNS, ".")
	if len(parts) < 2 {
		return ""
	}
	var field reflect.StructField
	for _, p := range parts[1:] {
		t = deref(t)
		if t.Kind() != reflect.Struct {
			return ""
		}
		if i := strings.IndexByte(p, '['); i >= 0 {
			p = p[:i]
		}
		f, ok := t.FieldByName(p)
		if !ok {
			return ""
		}
		field = f
		t = f.Type
		for t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return field.Tag.Get("msg")
}

// pickMessage elige el mensaje del tag msg para la regla que falló.
func pickMessage(raw, tag string) string {
	if raw == "" {
		return ""
	}
	fallback := ""
	for _, piece := range strings.Split(raw, "|") {
		rule, text, ok := strings.Cut(piece, ":")
		if ok && !strings.ContainsRune(rule, ' ') {
			if rule == tag {
				return text
			}
			continue
		}
		fallback = piece
	}
	return fallback
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "Este campo es obligatorio."
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("Debe agregar al menos %s elemento(s).", fe.Param())
		default:
			return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Debe tener como máximo %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Debe ser menor o igual a %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
	case "decpos":
		return "Debe ser un número mayor que 0."
	case "decnonneg":
		return "Debe ser un número mayor o igual a 0."
	case "email":
		return "Dirección de correo electrónico inválida."
	case "oneof":
		return "Seleccione una opción válida."
	case "datetime":
		return "Fecha inválida."
	case "adult":
		return "Debe ser mayor de 18 años para registrarse."
	case "numeric":
		return "Debe ser un número."
	default:
		return "Valor inválido (" + fe.Tag() + ")."
	}
}

// Atoi convierte un entero de formulario; vacío o inválido devuelve 0.
func Atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
