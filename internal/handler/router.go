package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/skillfolio/skillfolio/internal/middleware"
)

// RouterConfig carries everything the router needs to assemble the
// HTTP surface.
type RouterConfig struct {
	Logger   *slog.Logger
	Auth     *AuthHandler
	User     *UserHandler
	Skill    *SkillHandler
	Health   *HealthHandler
	Guard    middleware.AuthConfig
	CORS     middleware.CORSConfig
	Security middleware.SecurityConfig
}

// NewRouter builds the chi router: global middleware, public auth and
// health routes, and the bearer-guarded user and skill routes.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if cfg.Security.MaxRequestBodySize <= 0 {
		cfg.Security.MaxRequestBodySize = middleware.DefaultSecurityConfig().MaxRequestBodySize
	}

	h := New()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.Security))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.MaxBodySize(cfg.Security.MaxRequestBodySize))

	r.Get("/", h.Hello)
	r.Get("/app/health", cfg.Health.Health)
	r.Get("/readyz", cfg.Health.Readyz)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.Auth.Signup)
		r.Post("/login", cfg.Auth.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Guard))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", cfg.User.Me)
			r.Patch("/me", cfg.User.Update)
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", cfg.Skill.List)
			r.Post("/", cfg.Skill.Create)
			r.Get("/{skillId}", cfg.Skill.Get)
			r.Patch("/{skillId}", cfg.Skill.Update)
			r.Delete("/{skillId}", cfg.Skill.Delete)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
