package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	Form    FormConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Timezone string // zona horaria del negocio (fechas de venta, mayoría de edad)
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig configuración del backend REST externo.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout del cliente HTTP hacia el backend.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig configuración de la cookie de sesión.
type SessionConfig struct {
	CookieName   string
	RememberDays int // "recordarme" en el login
	QRDays       int // login por QR
	Secure       bool
}

// FormConfig configuración de los tokens de formulario.
type FormConfig struct {
	Secret     string // vacío = se genera uno aleatorio al arrancar
	TTLMinutes int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_COOKIE_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "embutidos-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Timezone: getString(v, "APP_TIMEZONE", "America/La_Paz"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			// NEXT_PUBLIC_API_URL se acepta para reutilizar los .env del dashboard anterior.
			BaseURL:        getString(v, "API_BASE_URL", getString(v, "NEXT_PUBLIC_API_URL", "http://localhost:8080/api")),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 10),
		},
		Session: SessionConfig{
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "token"),
			RememberDays: getInt(v, "SESSION_REMEMBER_DAYS", 30),
			QRDays:       getInt(v, "SESSION_QR_DAYS", 1),
			Secure:       getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Form: FormConfig{
			Secret:     getString(v, "FORM_TOKEN_SECRET", ""),
			TTLMinutes: getInt(v, "FORM_TOKEN_TTL_MINUTES", 120),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: API_BASE_URL inválida: %q", c.API.BaseURL)
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config: SESSION_COOKIE_NAME vacío")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
