package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/analytics-api/pkg/logger"
)

// El campo service acompaña cada línea cuando viene configurado.
func TestNew_AdjuntaCampoService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "analytics-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("listo")

	assert.Contains(t, buf.String(), `"service":"analytics-api"`)
	assert.Contains(t, buf.String(), `"message":"listo"`)
}

// Sin service no se agrega el campo.
func TestNew_SinService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("listo")

	assert.NotContains(t, buf.String(), `"service"`)
}

// Un nivel desconocido cae a info.
func TestNew_NivelPorDefecto(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
