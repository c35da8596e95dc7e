package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/dcat-mapper/internal/pkg/application/catalog"
	"github.com/diwise/dcat-mapper/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type mapperAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, registry catalog.Registry) API {
	return newMapperAPI(ctx, r, registry)
}

func newMapperAPI(ctx context.Context, r chi.Router, registry catalog.Registry) *mapperAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json", "application/ld+json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("dcat-mapper", otelchi.WithChiRoutes(r)))

	a := &mapperAPI{
		router: r,
		log:    log,
	}

	a.addProbeHandlers(r)
	a.addCatalogHandlers(r, log, registry)

	return a
}

func (a *mapperAPI) Start(port string) error {
	a.log.Info().Msgf("starting dcat-mapper on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *mapperAPI) addCatalogHandlers(r chi.Router, log zerolog.Logger, registry catalog.Registry) {
	r.Get("/api/sources", handlers.NewListSourcesHandler(log, registry))

	r.Route("/api/catalog", func(r chi.Router) {
		r.Post("/jupyterbook/expand", handlers.NewExpandBookHandler(log, registry))
		r.Post("/{source}", handlers.NewMapRecordHandler(log, registry))
	})
}

func (a *mapperAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
