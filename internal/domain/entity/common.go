package entity

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Ref referencia a otro documento del backend. Según el endpoint llega como
// el id en texto o como el documento poblado ({_id, nombre|name|codigoLote}).
type Ref struct {
	ID     string `json:"_id"`
	Nombre string `json:"nombre,omitempty"`
	Name   string `json:"name,omitempty"`
	Codigo string `json:"codigoLote,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		*r = Ref{}
		return json.Unmarshal(b, &r.ID)
	}
	type alias Ref
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*r = Ref(a)
	return nil
}

// Label texto legible de la referencia; cae al id si no vino poblada.
func (r Ref) Label() string {
	switch {
	case r.Nombre != "":
		return r.Nombre
	case r.Name != "":
		return r.Name
	case r.Codigo != "":
		return r.Codigo
	default:
		return r.ID
	}
}

// Date fecha del backend. Acepta RFC3339 (con o sin fracción), YYYY-MM-DD,
// cadena vacía y null.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Format dd/mm/aaaa o "—" si la fecha está vacía.
func (d Date) Format() string {
	if d.IsZero() {
		return "—"
	}
	return d.Time.Format("02/01/2006")
}

// ISODate YYYY-MM-DD para inputs type=date.
func (d Date) ISODate() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// Message respuesta genérica {"message": "..."} de las mutaciones.
type Message struct {
	Message string `json:"message"`
}
