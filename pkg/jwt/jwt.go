// Package jwt firma los tokens de formulario que protegen los POST del panel
// contra envíos de otros sitios. El token va atado a la sesión que lo pidió.
package jwt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer = "embutidos-web"

	// AnonymousBinding vincula tokens emitidos antes de iniciar sesión (formulario de login).
	AnonymousBinding = "anon"
)

// Claims del token de formulario. Subject es la huella de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Purpose string `json:"pur"`
}

// Binding calcula la huella de la sesión a la que se ata un token.
// Nunca se firma el token de sesión en claro.
func Binding(sessionToken string) string {
	if sessionToken == "" {
		return AnonymousBinding
	}
	sum := sha256.Sum256([]byte(sessionToken))
	return hex.EncodeToString(sum[:16])
}

// Generate genera un token firmado (HS256) para la huella indicada.
func Generate(secret, binding string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   binding,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Purpose: "form",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración y que el token pertenezca a la huella dada.
func Parse(secret, tokenString, binding string) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Purpose != "form" {
		return fmt.Errorf("claims inválidos")
	}
	if claims.Subject != binding {
		return fmt.Errorf("jwt: token emitido para otra sesión")
	}
	return nil
}
