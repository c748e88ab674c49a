package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/pkg/config"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

type observed struct {
	method, route string
	status        int
}

type recorder struct {
	mu   sync.Mutex
	seen []observed
}

func (r *recorder) ObserveUpstream(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observed{method, route, status})
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *recorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	rec := &recorder{}
	return New(config.APIConfig{BaseURL: srv.URL + "/", TimeoutSeconds: 2}, logger.Nop(), rec), rec
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_ListaEnvueltaYCabeceras(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ventas", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `{"ventas":[{"_id":"v1","totalVenta":150.5,"saldoVenta":0}]}`)
	})

	ctx := logger.WithRequestID(context.Background(), "req-1")
	sales, err := c.Sales(ctx, "tok")

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "v1", sales[0].ID)
	assert.True(t, decimal.RequireFromString("150.5").Equal(sales[0].TotalVenta))
	assert.Equal(t, []observed{{http.MethodGet, "/ventas", 200}}, rec.seen)
}

func TestProducts_ListaSuelta(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"p1","nombre":"Chorizo"},{"_id":"p2","nombre":"Salame"}]`)
	})
	products, err := c.Products(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestList_NullEsVacia(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"preventas":null}`)
	})
	presales, err := c.Presales(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, presales)
	assert.Empty(t, presales)
}

func TestList_SinCampoEsperado(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"otra":[]}`)
	})
	_, err := c.Clients(context.Background(), "tok")
	assert.ErrorContains(t, err, "clientes")
}

func TestUser_ObjetoEnvuelto(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u 1", r.URL.Path)
		_, _ = io.WriteString(w, `{"user":{"_id":"u 1","name":"Rosa"}}`)
	})
	u, err := c.User(context.Background(), "tok", "u 1")
	require.NoError(t, err)
	assert.Equal(t, "Rosa", u.Name)
	assert.Equal(t, "/users/:id", rec.seen[0].route, "la ruta observada es la plantilla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestDo_ErrorConMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Producto no encontrado"}`)
	})
	err := c.DeleteProduct(context.Background(), "tok", "p1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	msg, ok := domain.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Producto no encontrado", msg)
}

func TestDo_ErrorConCampoError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"No hay suficientes datos históricos para hacer predicciones."}`)
	})
	_, err := c.Prediction(context.Background(), "tok", "p1", "diario")

	assert.True(t, domain.IsStatus(err, http.StatusBadRequest))
	msg, _ := domain.ServerMessage(err)
	assert.Contains(t, msg, "No hay suficientes datos")
}

func TestDo_ErrorSinCuerpo(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Stocks(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrUpstream)
	_, ok := domain.ServerMessage(err)
	assert.False(t, ok)
}

func TestDo_ContextoCancelado(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Batches(ctx, "tok")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, rec.seen[0].status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateToken_Solo200EsValido(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/validate", r.URL.Path)
		w.WriteHeader(int(status.Load()))
	})

	assert.NoError(t, c.ValidateToken(context.Background(), "tok"))

	status.Store(http.StatusNoContent)
	assert.Error(t, c.ValidateToken(context.Background(), "tok"))

	status.Store(http.StatusUnauthorized)
	assert.ErrorIs(t, c.ValidateToken(context.Background(), "tok"), domain.ErrUnauthorized)
}

func TestValidateToken_BackendCaido(t *testing.T) {
	c := New(config.APIConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, logger.Nop(), nil)
	assert.Error(t, c.ValidateToken(context.Background(), "tok"))
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.bo","password":"secreto"}`, string(body))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"token":"jwt","message":"ok"}`)
	})
	res, err := c.Login(context.Background(), dto.LoginPayload{Email: "a@b.bo", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
}

func TestLoginQR_SinToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("token"))
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})
	_, err := c.LoginQR(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestProfile_ObjetoSuelto(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"u1","name":"Admin","permissions":[]}`)
	})
	p, err := c.Profile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Admin", p.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuerpos y parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayment_MontoNumerico(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"montoPagado":120.5`)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"message":"Pago registrado","pagosAplicados":[{"ventaId":"v1"}]}`)
	})
	res, err := c.CreatePayment(context.Background(), "tok", dto.PaymentPayload{
		Cliente: "c1", MontoPagado: decimal.RequireFromString("120.50"), MetodoPago: "efectivo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pago registrado", res.Message)
	assert.Len(t, res.PagosAplicados, 1)
}

func TestClientStatement_AgregaClienteSinTocarElFiltro(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c1", r.URL.Query().Get("clienteId"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		_, _ = io.WriteString(w, `{}`)
	})
	filter := url.Values{"year": {"2025"}}
	_, err := c.ClientStatement(context.Background(), "tok", "c1", filter)

	require.NoError(t, err)
	assert.Empty(t, filter.Get("clienteId"))
}

func TestDashboard_TimeRange(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "week", r.URL.Query().Get("timeRange"))
		_, _ = io.WriteString(w, `[]`)
	})
	points, err := c.Dashboard().Sales(context.Background(), "tok", "week")
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Equal(t, "/dashboard/sales", rec.seen[0].route)
}

func TestGenerateAlerts_RespuestaVacia(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.GenerateAlerts(context.Background(), "tok"))
}
