package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

type fakeAuth struct {
	loginCalls int
	result     entity.LoginResult
	err        error
	profile    *entity.Profile
	profileErr error
}

func (f *fakeAuth) Login(_ context.Context, _ dto.LoginPayload) (entity.LoginResult, error) {
	f.loginCalls++
	return f.result, f.err
}

func (f *fakeAuth) LoginQR(_ context.Context, _ string) (entity.LoginResult, error) {
	return f.result, f.err
}

func (f *fakeAuth) ValidateToken(context.Context, string) error { return f.err }

func (f *fakeAuth) Profile(context.Context, string) (*entity.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAuth) GenerateQR(context.Context, string, string) (entity.QRCode, error) {
	return entity.QRCode{}, nil
}

func newUseCase(f *fakeAuth) *AuthUseCase {
	return NewAuthUseCase(f, CookieConfig{RememberDays: 30, QRDays: 1}, logger.Nop())
}

func TestLogin_FormularioInvalido_NoLlamaAlBackend(t *testing.T) {
	f := &fakeAuth{}
	_, v, err := newUseCase(f).Login(context.Background(), dto.LoginForm{Email: "no-es-email", Password: "123"})

	require.NoError(t, err)
	assert.Equal(t, "Email inválido", v.Get("email"))
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", v.Get("password"))
	assert.Zero(t, f.loginCalls)
}

func TestLogin_Recordarme_CookieDe30Dias(t *testing.T) {
	f := &fakeAuth{result: entity.LoginResult{Token: "tok", Message: "Bienvenido"}}
	out, v, err := newUseCase(f).Login(context.Background(), dto.LoginForm{Email: "ana@mardely.bo", Password: "secreto", RememberMe: true})

	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, 30*24*time.Hour, out.MaxAge)
}

func TestLogin_SinRecordarme_CookieDeSesion(t *testing.T) {
	f := &fakeAuth{result: entity.LoginResult{Token: "tok"}}
	out, _, err := newUseCase(f).Login(context.Background(), dto.LoginForm{Email: "ana@mardely.bo", Password: "secreto"})

	require.NoError(t, err)
	assert.Zero(t, out.MaxAge)
}

func TestLogin_ErrorDelBackendConservaElMensaje(t *testing.T) {
	f := &fakeAuth{err: &domain.APIError{Status: 401, Message: "Credenciales inválidas"}}
	_, _, err := newUseCase(f).Login(context.Background(), dto.LoginForm{Email: "ana@mardely.bo", Password: "secreto"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	msg, ok := domain.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Credenciales inválidas", msg)
}

func TestLoginQR(t *testing.T) {
	uc := newUseCase(&fakeAuth{result: entity.LoginResult{Token: "qr-tok"}})

	_, err := uc.LoginQR(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoToken)

	out, err := uc.LoginQR(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "qr-tok", out.Token)
	assert.Equal(t, 24*time.Hour, out.MaxAge)
}

func TestSession_DescartaPermisosDesconocidos(t *testing.T) {
	f := &fakeAuth{profile: &entity.Profile{ID: "u1", Name: "Ana", Permissions: []permission.Grant{
		{Name: "ver_productos", Granted: true},
		{Name: "ver_ventas", Granted: false},
		{Name: "permiso_inventado", Granted: true},
	}}}

	s := newUseCase(f).Session(context.Background(), "tok")
	assert.True(t, s.Can(permission.VerProductos))
	assert.False(t, s.Can(permission.VerVentas))
	assert.Equal(t, []permission.Permission{permission.VerProductos}, s.Permissions().Granted())
}

func TestSession_PerfilFallido(t *testing.T) {
	s := newUseCase(&fakeAuth{profileErr: errors.New("timeout")}).Session(context.Background(), "tok")
	assert.Error(t, s.ProfileErr())
	assert.False(t, s.Can(permission.VerProductos))

	assert.False(t, newUseCase(&fakeAuth{}).Session(context.Background(), "").Authenticated())
}
