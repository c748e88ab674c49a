package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/embutidos-web/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestFormToken_GenerateAndParse(t *testing.T) {
	binding := pkgjwt.Binding("sesion-abc")
	tok, err := pkgjwt.Generate(testSecret, binding, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	assert.NoError(t, pkgjwt.Parse(testSecret, tok, binding))
}

func TestFormToken_OtraSesion_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Binding("sesion-abc"), time.Hour)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse(testSecret, tok, pkgjwt.Binding("sesion-xyz")),
		"un token de otra sesión no debe aceptarse")
}

func TestFormToken_Expirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.AnonymousBinding, -time.Minute)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse(testSecret, tok, pkgjwt.AnonymousBinding))
}

func TestFormToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.AnonymousBinding, time.Hour)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse("otro-secret-completamente-distinto", tok, pkgjwt.AnonymousBinding))
}

func TestBinding_SinSesionEsAnonimo(t *testing.T) {
	assert.Equal(t, pkgjwt.AnonymousBinding, pkgjwt.Binding(""))
	assert.NotEqual(t, "sesion-abc", pkgjwt.Binding("sesion-abc"), "la huella no expone el token")
	assert.Len(t, pkgjwt.Binding("sesion-abc"), 32)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.AnonymousBinding, time.Hour)
	assert.Error(t, err)
}
