package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/dcat-mapper/internal/pkg/application/catalog"
	"github.com/diwise/dcat-mapper/internal/pkg/application/jupyterbook"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("dcat-mapper/api")

const MaxRecordSize int64 = 8 << 20

func NewListSourcesHandler(logger zerolog.Logger, registry catalog.Registry) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		_, span := tracer.Start(r.Context(), "list-sources")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		body, err := json.Marshal(registry.Sources())
		if err != nil {
			logger.Error().Err(err).Msg("failed to marshal sources")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=3600")
		w.Write(body)
	})
}

func NewMapRecordHandler(logger zerolog.Logger, registry catalog.Registry) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "map-record")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		source := chi.URLParam(r, "source")

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRecordSize))
		if err != nil {
			err = fmt.Errorf("failed to read request body: %w", err)
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		dataset, err := registry.Map(ctx, source, raw)
		if err != nil {
			log.Error().Err(err).Str("source", source).Msg("failed to map record")
			w.WriteHeader(statusFor(err))
			return
		}

		writeJSONLD(w, log, dataset)
	})
}

func NewExpandBookHandler(logger zerolog.Logger, registry catalog.Registry) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "expand-book")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRecordSize))
		if err != nil {
			err = fmt.Errorf("failed to read request body: %w", err)
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		in, err := jupyterbook.Parse(raw)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		datasets, err := registry.MapBook(ctx, in)
		if err != nil {
			log.Error().Err(err).Msg("failed to expand book")
			w.WriteHeader(statusFor(err))
			return
		}

		writeJSONLD(w, log, datasets)
	})
}

func writeJSONLD(w http.ResponseWriter, log zerolog.Logger, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/ld+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownSource):
		return http.StatusNotFound
	case errors.Is(err, jupyterbook.ErrDuplicateChapterTitle):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
