package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"poppy-paws/internal/platform/logger"
	"poppy-paws/internal/platform/web"
)

// RegisterRoutes monta el recurso /dogs.
// guard protege las mutaciones; las lecturas son públicas.
func RegisterRoutes(r chi.Router, svc *Service, guard func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/dogs", func(dr chi.Router) {
		// Cada grupo declara exactamente sus métodos permitidos.
		dr.Group(func(cr chi.Router) {
			cr.Use(web.PermissiveCORS(http.MethodGet, http.MethodPost, http.MethodOptions))
			cr.Get("/", listDogsHandler(svc, log))
			cr.With(guard).Post("/", createDogHandler(svc, log))
			cr.Options("/", web.OKNoBody)
		})

		dr.Route("/{dogID}", func(ir chi.Router) {
			ir.Use(web.PermissiveCORS(http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions))
			ir.Get("/", getDogHandler(svc, log))
			ir.With(guard).Put("/", updateDogHandler(svc, log))
			ir.With(guard).Delete("/", deleteDogHandler(svc, log))
			ir.Options("/", web.OKNoBody)
		})
	})
}

// dogPayload es el cuerpo de POST/PUT. En requests la bandera de
// padrinazgo viaja como isSponsored (forma de aplicación).
type dogPayload struct {
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Size        string   `json:"size"`
	Personality []string `json:"personality"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	IsSponsored bool     `json:"isSponsored"`
}

// dogResponse replica las columnas del datastore: en responses la
// bandera sale como is_sponsored (forma de wire). La traducción
// isSponsored⇄is_sponsored vive solo en estos dos tipos.
type dogResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         string    `json:"age"`
	Size        string    `json:"size"`
	Personality []string  `json:"personality"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Location    string    `json:"location"`
	IsSponsored bool      `json:"is_sponsored"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toInput(p dogPayload) Input {
	return Input{
		Name:        p.Name,
		Breed:       p.Breed,
		Age:         p.Age,
		Size:        p.Size,
		Personality: p.Personality,
		Description: p.Description,
		Images:      p.Images,
		Location:    p.Location,
		IsSponsored: p.IsSponsored,
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:          d.ID,
		Name:        d.Name,
		Breed:       d.Breed,
		Age:         d.Age,
		Size:        d.Size,
		Personality: d.Personality,
		Description: d.Description,
		Images:      d.Images,
		Location:    d.Location,
		IsSponsored: d.IsSponsored,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			internalError(w, log, "list dogs", err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dogPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, "invalid json")
			return
		}

		d, err := svc.Create(r.Context(), toInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, err.Error())
				return
			}
			internalError(w, log, "create dog", err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := dogID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
				return
			}
			internalError(w, log, "get dog", err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func updateDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := dogID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
			return
		}

		var req dogPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, "invalid json")
			return
		}

		d, err := svc.Update(r.Context(), id, toInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
			default:
				internalError(w, log, "update dog", err)
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func deleteDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := dogID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteError(w, http.StatusNotFound, web.CodeNotFound, "dog not found")
				return
			}
			internalError(w, log, "delete dog", err)
			return
		}

		// A propósito no devolvemos la fila borrada: quien la necesite
		// debe pedirla con GET antes de borrar.
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Dog deleted successfully"})
	}
}

// dogID parsea el id de la URL. Un id no numérico se trata igual
// que uno inexistente.
func dogID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// internalError loguea el detalle y responde un 500 opaco.
func internalError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	log.Error("datastore failure", map[string]any{"op": op, "err": err.Error()})
	web.WriteError(w, http.StatusInternalServerError, web.CodeInternal, "internal server error")
}
