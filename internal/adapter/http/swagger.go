package httpadapter

import (
	_ "embed"
	"net/http"

	swgui "github.com/swaggest/swgui/v5"
)

const (
	openAPIPath   = "/openapi.yaml"
	swaggerUIPath = "/swagger"
)

//go:embed openapi.yaml
var openAPISpec []byte

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPISpec)
}

// swaggerUI returns a Swagger UI handler with embedded assets.
func swaggerUI() http.Handler {
	return swgui.New("Creative Library API", openAPIPath, swaggerUIPath)
}
