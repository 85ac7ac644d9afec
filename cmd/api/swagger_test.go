package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analytics-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// Sin spec en disco la app arranca sin /docs: nada de panic en el arranque.
func TestSwaggerMiddleware_SpecAusente_ArrancaSinDocs(t *testing.T) {
	var h fiber.Handler
	require.NotPanics(t, func() {
		h = swaggerMiddleware(filepath.Join(t.TempDir(), "no-existe.json"), "Analytics API", testLogger())
	})
	assert.Nil(t, h, "sin spec no se monta el middleware")

	app := fiber.New()
	if h != nil {
		app.Use(h)
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el resto de la API sigue sirviendo")
}

// Con el spec presente la UI queda montada en /docs.
func TestSwaggerMiddleware_SpecPresente_MontaUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := []byte(`{"swagger":"2.0","info":{"title":"t","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(specPath, spec, 0o644))

	h := swaggerMiddleware(specPath, "Analytics API", testLogger())
	require.NotNil(t, h)

	app := fiber.New()
	app.Use(h)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// El spec versionado en docs/ es JSON válido y montable tal cual.
func TestSwaggerMiddleware_SpecDelRepo(t *testing.T) {
	h := swaggerMiddleware(filepath.Join("..", "..", "docs", "swagger.json"), "Analytics API", testLogger())
	assert.NotNil(t, h, "docs/swagger.json debe existir y ser un spec válido")
}
