package main

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/analytics-api/pkg/logger"
)

// swaggerSpecPath spec OpenAPI servido por la UI de documentación.
const swaggerSpecPath = "./docs/swagger.json"

// swaggerMiddleware monta la UI de Swagger solo si el spec existe en disco.
// swagger.New hace panic cuando el archivo no está, así que se verifica
// antes: sin spec la API arranca igual, solo sin /docs.
func swaggerMiddleware(specPath, title string, log *logger.Logger) fiber.Handler {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("file", specPath).Msg("spec de Swagger no encontrado, /docs deshabilitado")
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    title,
	})
}
