package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"poppy-paws/internal/platform/logger"
	"poppy-paws/internal/platform/web"
)

// RegisterRoutes monta el recurso singleton /content.
// El replace siempre es upsert: el caller nunca ve la distinción
// create/update.
func RegisterRoutes(r chi.Router, svc *Service, guard func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/content", func(cr chi.Router) {
		cr.Use(web.PermissiveCORS(http.MethodGet, http.MethodPut, http.MethodOptions))
		cr.Get("/", getContentHandler(svc, log))
		cr.With(guard).Put("/", replaceContentHandler(svc, log))
		cr.Options("/", web.OKNoBody)
	})
}

func getContentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Get(r.Context())
		if err != nil {
			internalError(w, log, "get content", err)
			return
		}

		// Objeto vacío es un valor válido, nunca 404.
		web.WriteJSON(w, http.StatusOK, doc)
	}
}

func replaceContentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, "body must be a json object")
			return
		}

		stored, err := svc.Replace(r.Context(), doc)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, err.Error())
				return
			}
			internalError(w, log, "replace content", err)
			return
		}

		// Eco del input, no una relectura del storage.
		web.WriteJSON(w, http.StatusOK, stored)
	}
}

func internalError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	log.Error("datastore failure", map[string]any{"op": op, "err": err.Error()})
	web.WriteError(w, http.StatusInternalServerError, web.CodeInternal, "internal server error")
}
