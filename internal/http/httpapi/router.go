package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
	)
	if len(app.Cfg.CORSOrigins) > 0 {
		r.Use(middleware.CORS(app.Cfg.CORSOrigins))
	}

	r.Get("/healthz", app.Health)

	// Public site
	r.Get("/", app.Index)
	r.Post("/donate_book", app.DonateBook)
	r.Post("/apply_volunteer", app.ApplyVolunteer)
	r.Post("/contact", app.Contact)

	// Admin area
	r.Get("/admin", app.AdminLoginPage)
	r.Post("/admin", app.AdminLogin)
	r.Get("/logout", app.Logout)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminRequired(app.Cfg.SecretKey))
		r.Get("/admin/dashboard", app.AdminDashboard)
	})

	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(app.Cfg.StaticDir))))

	return r
}
