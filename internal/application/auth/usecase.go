package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// Mensajes del flujo de login.
const (
	LoginFailed   = "Ha ocurrido un error"
	QRLoginFailed = "Error al procesar el QR."
)

// CookieConfig duración de la cookie según el tipo de login.
type CookieConfig struct {
	RememberDays int // "recordarme"
	QRDays       int // login por QR
}

// LoginOutcome token obtenido y cuánto debe vivir la cookie (0 = cookie de sesión).
type LoginOutcome struct {
	Token   string
	MaxAge  time.Duration
	Message string
}

// AuthUseCase login, login por QR y armado de la sesión de cada petición.
type AuthUseCase struct {
	auth   ports.AuthService
	cookie CookieConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(auth ports.AuthService, cookie CookieConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{auth: auth, cookie: cookie, log: log.Component("auth")}
}

// Login valida el formulario y, si es correcto, pide el token al backend.
// Con errores de validación no se llama al backend.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (LoginOutcome, view.Violations, error) {
	in.Email = strings.TrimSpace(in.Email)
	if v := view.Validate(in); len(v) > 0 {
		return LoginOutcome{}, v, nil
	}
	res, err := uc.auth.Login(ctx, dto.LoginPayload{Email: in.Email, Password: in.Password})
	if err != nil {
		return LoginOutcome{}, nil, fmt.Errorf("auth: login: %w", err)
	}
	if res.Token == "" {
		return LoginOutcome{}, nil, fmt.Errorf("auth: login sin token: %w", domain.ErrUpstream)
	}
	out := LoginOutcome{Token: res.Token, Message: res.Message}
	if in.RememberMe {
		out.MaxAge = days(uc.cookie.RememberDays)
	}
	uc.log.Info().Bool("remember", in.RememberMe).Msg("login correcto")
	return out, nil, nil
}

// LoginQR canjea el token del QR por un token de sesión con vida de QRDays.
func (uc *AuthUseCase) LoginQR(ctx context.Context, qrToken string) (LoginOutcome, error) {
	if strings.TrimSpace(qrToken) == "" {
		return LoginOutcome{}, domain.ErrNoToken
	}
	res, err := uc.auth.LoginQR(ctx, qrToken)
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("auth: login QR: %w", err)
	}
	if res.Token == "" {
		return LoginOutcome{}, fmt.Errorf("auth: login QR sin token: %w", domain.ErrUpstream)
	}
	return LoginOutcome{Token: res.Token, MaxAge: days(uc.cookie.QRDays), Message: res.Message}, nil
}

// ValidateToken delega en el backend (GET /auth/validate).
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) error {
	return uc.auth.ValidateToken(ctx, token)
}

// Session carga el perfil y arma la sesión de la petición. Si el perfil falla la
// sesión queda sin permisos. Los nombres de permiso desconocidos se descartan.
func (uc *AuthUseCase) Session(ctx context.Context, token string) *session.Session {
	if token == "" {
		return session.Anonymous()
	}
	profile, err := uc.auth.Profile(ctx, token)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo cargar el perfil")
		return session.WithoutProfile(token, err)
	}
	perms, unknown := permission.NewSet(profile.Permissions)
	if len(unknown) > 0 {
		uc.log.Warn().Strs("unknown", unknown).Str("user", profile.ID).Msg("permisos desconocidos descartados")
	}
	return session.New(token, profile, perms)
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
