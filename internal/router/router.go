package router

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"poppy-paws/internal/adapters/auth/token"
	mem "poppy-paws/internal/adapters/storage/memory"
	pg "poppy-paws/internal/adapters/storage/postgres"
	"poppy-paws/internal/domain/content"
	"poppy-paws/internal/domain/dogs"
	"poppy-paws/internal/domain/setup"
	"poppy-paws/internal/middleware"
	"poppy-paws/internal/platform/logger"
	"poppy-paws/internal/platform/web"
)

type Options struct {
	// Pool de Postgres. Nil => repos in-memory (modo dev).
	Pool *pgxpool.Pool
	// DSN original, lo necesitan las migraciones de /init.
	DSN string

	// Tokens emite y verifica sesiones de admin. Nil => modo dev:
	// no hay /auth/login y las mutaciones quedan abiertas.
	Tokens        *token.Manager
	AdminPassword string

	Logger logger.Logger
}

func New(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics())
	r.Use(middleware.RequestLogger(log))

	var guard func(http.Handler) http.Handler
	if opts.Tokens != nil {
		r.Use(middleware.AuthContext(opts.Tokens))
		guard = middleware.RequireAdmin(opts.Tokens)
	} else {
		r.Use(middleware.AuthContext(nil))
		guard = middleware.RequireAdmin(nil)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Repos: Postgres si hay pool, in-memory si no.
	var (
		dogsRepo    dogs.Repository
		contentRepo content.Repository
		setupRepo   setup.Repository
	)
	if opts.Pool != nil {
		dogsRepo = pg.NewDogsRepo(opts.Pool)
		contentRepo = pg.NewContentRepo(opts.Pool)
		setupRepo = pg.NewSetupRepo(opts.Pool, opts.DSN)
	} else {
		dogsRepo = mem.NewDogsRepo()
		contentRepo = mem.NewContentRepo()
		setupRepo = mem.NewSetupRepo(dogsRepo, contentRepo)
	}

	dogsSvc := dogs.NewService(dogsRepo)
	contentSvc := content.NewService(contentRepo)
	setupSvc := setup.NewService(setupRepo)

	dogs.RegisterRoutes(r, dogsSvc, guard, log)
	content.RegisterRoutes(r, contentSvc, guard, log)
	setup.RegisterRoutes(r, setupSvc, guard, log)

	if opts.Tokens != nil {
		r.Route("/auth", func(ar chi.Router) {
			ar.Use(web.PermissiveCORS(http.MethodPost, http.MethodOptions))
			ar.Post("/login", loginHandler(opts.Tokens, opts.AdminPassword, log))
			ar.Options("/login", web.OKNoBody)
		})
	}

	// Después de registrar rutas, para que los subrouters hereden
	// los envelopes JSON de 404/405.
	r.NotFound(web.NotFoundHandler)
	r.MethodNotAllowed(web.MethodNotAllowedHandler)

	return r
}

type loginRequest struct {
	Password string `json:"password"`
}

// loginHandler cambia la password compartida del back office por un
// token de sesión firmado. Reemplaza al booleano que el sitio viejo
// guardaba en el browser.
func loginHandler(tokens *token.Manager, password string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.CodeInvalidRequest, "invalid json")
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(password)) != 1 {
			web.WriteError(w, http.StatusUnauthorized, web.CodeUnauthorized, "invalid credentials")
			return
		}

		signed, err := tokens.Issue("admin")
		if err != nil {
			log.Error("issue token", map[string]any{"err": err.Error()})
			web.WriteError(w, http.StatusInternalServerError, web.CodeInternal, "internal server error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]string{"token": signed})
	}
}
