package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/pkg/config"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

var (
	_ ports.AuthService       = (*Client)(nil)
	_ ports.CatalogService    = (*Client)(nil)
	_ ports.InventoryService  = (*Client)(nil)
	_ ports.SalesService      = (*Client)(nil)
	_ ports.PaymentService    = (*Client)(nil)
	_ ports.PresaleService    = (*Client)(nil)
	_ ports.UserService       = (*Client)(nil)
	_ ports.ReportService     = (*Client)(nil)
	_ ports.PredictionService = (*Client)(nil)
	_ ports.DashboardService  = (*Dashboard)(nil)
)

// maxBody límite de lectura de cualquier respuesta del backend.
const maxBody = 1 << 20

func init() {
	// El backend espera montos numéricos, no cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Observer recibe la latencia de cada llamada al backend. route es la plantilla
// de la ruta (p. ej. "/ventas/:id") para no disparar la cardinalidad.
type Observer interface {
	ObserveUpstream(method, route string, status int, elapsed time.Duration)
}

// Client adaptador REST del backend de Embutidos Mardely. Implementa todos los
// puertos de ports/backend_port.go.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	observer   Observer
}

// New construye el cliente. observer puede ser nil.
func New(cfg config.APIConfig, log *logger.Logger, observer Observer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log.Component("api"),
		observer:   observer,
	}
}

// request describe una llamada. route es la plantilla usada en métricas y logs.
type request struct {
	method string
	route  string
	path   string
	token  string
	query  url.Values
	body   any
}

// errorBody forma de los errores del backend: {"message"} o {"error"}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la petición y decodifica la respuesta 2xx en out (si no es nil).
// Cualquier otra respuesta se devuelve como *domain.APIError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("api: serializar %s: %w", r.route, err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("api: crear request %s: %w", r.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r, 0, start)
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s cancelada: %w", r.route, ctx.Err())
		}
		return fmt.Errorf("api: %s: %w", r.route, err)
	}
	defer resp.Body.Close()
	c.observe(r, resp.StatusCode, start)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("api: leer respuesta %s: %w", r.route, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		c.log.Ctx(ctx).Debug().
			Str("method", r.method).
			Str("route", r.route).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("respuesta de error del backend")
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decodificar %s: %w", r.route, err)
	}
	return nil
}

func (c *Client) observe(r request, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(r.method, r.route, status, time.Since(start))
	}
}

// get atajo para GET autenticado.
func (c *Client) get(ctx context.Context, route, path, token string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, route: route, path: path, token: token, query: query}, out)
}

// send atajo para POST/PUT/DELETE autenticado cuya respuesta solo trae un mensaje.
func (c *Client) send(ctx context.Context, method, route, path, token string, body any) error {
	return c.do(ctx, request{method: method, route: route, path: path, token: token, body: body}, nil)
}

// list decodifica una lista que el backend puede enviar suelta ([…]) o
// envuelta en un objeto ({"<key>": […]}).
func list[T any](raw json.RawMessage, key string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	if raw[0] == '[' {
		var out []T
		err := json.Unmarshal(raw, &out)
		return out, err
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	inner, ok := env[key]
	if !ok {
		return nil, fmt.Errorf("api: respuesta sin campo %q", key)
	}
	var out []T
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// one decodifica un objeto que puede venir suelto o envuelto en {"<key>": {…}}.
func one[T any](raw json.RawMessage, key string) (T, error) {
	var out T
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return out, err
	}
	if inner, ok := env[key]; ok && len(inner) > 0 && inner[0] == '{' {
		raw = inner
	}
	err := json.Unmarshal(raw, &out)
	return out, err
}

// getList GET de una lista tolerante al envoltorio.
func getList[T any](ctx context.Context, c *Client, route, path, token, key string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, route, path, token, query, &raw); err != nil {
		return nil, err
	}
	out, err := list[T](raw, key)
	if err != nil {
		return nil, fmt.Errorf("api: decodificar %s: %w", route, err)
	}
	return out, nil
}

// escape segmento de ruta con id.
func escape(id string) string { return url.PathEscape(id) }
