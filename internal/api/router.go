package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"bloglist/internal/api/handlers"
	"bloglist/internal/auth"
	"bloglist/internal/config"
	"bloglist/internal/metrics"
	"bloglist/internal/middleware"
	repo "bloglist/internal/repository"
	"bloglist/internal/services"
)

type RouterDeps struct {
	Cfg      config.Config
	TM       *auth.TokenManager
	Users    repo.Users
	UserSvc  *services.UserService
	LoginSvc *services.LoginService
	BlogSvc  *services.BlogService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.TokenExtractor)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authmw := middleware.NewAuthMiddleware(d.TM, d.Users)
	blogs := handlers.NewBlogsHandler(d.BlogSvc)
	users := handlers.NewUsersHandler(d.UserSvc)
	login := handlers.NewLoginHandler(d.LoginSvc)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", login.Login)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Post("/", users.Create)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogs.List)
			r.With(authmw.RequireUser).Post("/", blogs.Create)
			// like updates are deliberately unauthenticated, matching the
			// shipped behavior; delete is owner-only
			r.Put("/{id}", blogs.UpdateLikes)
			r.With(authmw.RequireUser).Delete("/{id}", blogs.Delete)
		})
	})

	return r
}
