package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"cinemashowings/internal/delivery/http/controllers"
	"cinemashowings/internal/delivery/http/middleware"
	"cinemashowings/internal/domain"
)

// RouterDeps carries the controllers and cross-cutting collaborators the router mounts.
type RouterDeps struct {
	Logger         *slog.Logger
	TokenVerifier  domain.TokenVerifier
	AllowedOrigins []string

	Auth     *controllers.AuthController
	Showings *controllers.ShowingsController
	Totals   *controllers.TotalsController
	Info     *controllers.InfoController
	Reports  *controllers.ReportsController
	Health   *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes wrapped in
// request ID, logging and CORS middleware.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.TokenVerifier, d.Logger)

	// Auth
	mux.HandleFunc("POST /auth/token", d.Auth.Token)

	// Showings
	mux.HandleFunc("GET /showings", auth(d.Showings.Search))
	mux.HandleFunc("GET /totals/movies", auth(d.Totals.Movies))
	mux.HandleFunc("GET /totals/formats", auth(d.Totals.Formats))
	mux.HandleFunc("GET /totals/cinemas", auth(d.Totals.Cinemas))
	mux.HandleFunc("POST /reports/totals", auth(d.Reports.TotalsReport))

	// Directory
	mux.HandleFunc("GET /info/zones", d.Info.Zones)
	mux.HandleFunc("GET /info/cinemas", d.Info.Cinemas)

	mux.HandleFunc("GET /healthz", d.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.RequestID(middleware.LoggingMiddleware(d.Logger, middleware.CORS(d.AllowedOrigins, mux)))
}
