package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-service/docs"
	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-service/internal/http/middleware"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options wires optional middleware. A nil Limiter disables rate limiting
// and a nil Banner disables bans.
type Options struct {
	Limiter mw.Allower
	Banner  mw.Banner
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(mw.RequestID)
	r.Use(mw.AccessLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter, opts.Banner))
		}

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handlers.GetItemsHandler)
			r.Post("/", handlers.CreateItemsHandler)
			r.Post("/import", handlers.ImportItemsHandler)

			r.Get("/highest-quantity", handlers.ExtremalItemHandler(repo.FieldQuantity, repo.Descending))
			r.Get("/lowest-quantity", handlers.ExtremalItemHandler(repo.FieldQuantity, repo.Ascending))
			r.Get("/oldest-item", handlers.ExtremalItemHandler(repo.FieldCreatedOn, repo.Ascending))
			r.Get("/newest-item", handlers.ExtremalItemHandler(repo.FieldCreatedOn, repo.Descending))
			r.Get("/search/{keyword}", handlers.SearchItemsHandler)
			r.Get("/sort/{attribute}", handlers.SortItemsHandler)
			r.Get("/name/{name}", handlers.GetItemByNameHandler)

			r.Get("/{name}", handlers.GetItemByNameHandler)
			r.Put("/{name}", handlers.UpsertItemHandler)
			r.Delete("/{name}", handlers.DeleteItemHandler)
		})

		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	})

	return r
}
