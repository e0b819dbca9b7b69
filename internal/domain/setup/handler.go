package setup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"poppy-paws/internal/platform/logger"
	"poppy-paws/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service, guard func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/init", func(ir chi.Router) {
		ir.Use(web.PermissiveCORS(http.MethodPost, http.MethodOptions))
		ir.With(guard).Post("/", initHandler(svc, log))
		ir.Options("/", web.OKNoBody)
	})
}

func initHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Run(r.Context()); err != nil {
			log.Error("provisioning failed", map[string]any{"err": err.Error()})
			web.WriteError(w, http.StatusInternalServerError, web.CodeInternal, "failed to initialize database")
			return
		}

		log.Info("datastore provisioned", nil)
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Database initialized successfully"})
	}
}
