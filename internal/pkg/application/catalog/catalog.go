package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/dcat-mapper/internal/pkg/application/adapters/github"
	"github.com/diwise/dcat-mapper/internal/pkg/application/adapters/gitlab"
	"github.com/diwise/dcat-mapper/internal/pkg/application/adapters/oaidc"
	"github.com/diwise/dcat-mapper/internal/pkg/application/adapters/youtube"
	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/application/jupyterbook"
	"github.com/diwise/dcat-mapper/internal/pkg/application/records"
	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("dcat-mapper/catalog")

var ErrUnknownSource = errors.New("unknown source")

const (
	SourceJupyterBook string = "jupyterbook"
	SourceGitHub      string = "github"
	SourceGitLab      string = "gitlab"
	SourceYouTube     string = "youtube"
	SourceOAIDC       string = "oai_dc"
)

//go:generate moq -rm -out mapper_mock.go . Mapper
type Mapper interface {
	Map(ctx context.Context, raw []byte) (*domain.Dataset, error)
}

//go:generate moq -rm -out registry_mock.go . Registry
type Registry interface {
	Sources() []string
	Map(ctx context.Context, source string, raw []byte) (*domain.Dataset, error)
	MapBook(ctx context.Context, in jupyterbook.Input) ([]*domain.Dataset, error)
}

//New returns a registry with a mapper for every supported source
func New(settings *config.Settings) Registry {
	return NewRegistry(settings, map[string]Mapper{
		SourceJupyterBook: &bookMapper{settings: settings},
		SourceGitHub:      &recordMapper{parse: github.Parse, settings: settings},
		SourceGitLab:      &recordMapper{parse: gitlab.Parse, settings: settings},
		SourceYouTube:     &recordMapper{parse: youtube.Parse, settings: settings},
		SourceOAIDC:       &recordMapper{parse: oaidc.Parse, settings: settings},
	})
}

func NewRegistry(settings *config.Settings, mappers map[string]Mapper) Registry {
	if settings == nil {
		settings = config.Default()
	}

	return &registry{
		settings: settings,
		mappers:  mappers,
	}
}

type registry struct {
	settings *config.Settings
	mappers  map[string]Mapper
}

func (r *registry) Sources() []string {
	sources := maps.Keys(r.mappers)
	slices.Sort(sources)
	return sources
}

func (r *registry) Map(ctx context.Context, source string, raw []byte) (*domain.Dataset, error) {
	var err error

	ctx, span := tracer.Start(ctx, "map-record")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.String("source", source), attribute.Int("size", len(raw)))

	m, ok := r.mappers[source]
	if !ok {
		err = fmt.Errorf("no mapper for %q: %w", source, ErrUnknownSource)
		return nil, err
	}

	dataset, err := m.Map(ctx, raw)
	if err != nil {
		logger := logging.GetFromContext(ctx)
		logger.Debug().Err(err).Str("source", source).Msg("failed to map record")
		return nil, err
	}

	return dataset, nil
}

//MapBook maps a whole book followed by each of its chapters
func (r *registry) MapBook(ctx context.Context, in jupyterbook.Input) ([]*domain.Dataset, error) {
	var err error

	ctx, span := tracer.Start(ctx, "map-book")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = jupyterbook.Validate(in); err != nil {
		return nil, err
	}

	inputs := jupyterbook.Expand(in)
	datasets := make([]*domain.Dataset, 0, len(inputs))

	for _, input := range inputs {
		var ds *domain.Dataset
		ds, err = jupyterbook.Transform(ctx, input, r.settings)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}

	span.SetAttributes(attribute.Int("records", len(datasets)))

	return datasets, nil
}

type bookMapper struct {
	settings *config.Settings
}

func (m *bookMapper) Map(ctx context.Context, raw []byte) (*domain.Dataset, error) {
	in, err := jupyterbook.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err = jupyterbook.Validate(in); err != nil {
		return nil, err
	}

	return jupyterbook.Transform(ctx, in, m.settings)
}

type recordMapper struct {
	parse    func([]byte) (records.Record, error)
	settings *config.Settings
}

func (m *recordMapper) Map(ctx context.Context, raw []byte) (*domain.Dataset, error) {
	rec, err := m.parse(raw)
	if err != nil {
		return nil, err
	}

	return records.ToDataset(rec, m.settings), nil
}
