package web

import (
	"net/http"

	"github.com/go-chi/cors"
)

// PermissiveCORS: origen *, los métodos que declara cada recurso,
// Content-Type y Authorization como headers permitidos.
func PermissiveCORS(methods ...string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: methods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
}

// OKNoBody responde a los OPTIONS simples (sin preflight) con 200
// y cuerpo vacío, independiente de la lógica de negocio.
func OKNoBody(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
