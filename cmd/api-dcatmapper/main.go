package main

import (
	"context"
	"flag"
	"os"

	"github.com/diwise/dcat-mapper/internal/pkg/application/catalog"
	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

func loadSettings(ctx context.Context, path string) *config.Settings {
	log := logging.GetFromContext(ctx)

	settingsFile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the settings file %s, using defaults.", path)
		return config.Default().WithEnvironment(log)
	}
	defer settingsFile.Close()

	settings, err := config.Load(settingsFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("unable to parse settings file %s", path)
	}

	return settings.WithEnvironment(log)
}

var settingsFileName string

func main() {
	serviceName := "api-dcatmapper"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&settingsFileName, "config", "/opt/diwise/config/dcat-mapper.yaml", "Mapper settings (language, categories and activity)")
	flag.Parse()

	settings := loadSettings(ctx, settingsFileName)
	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	api := presentation.NewAPI(ctx, chi.NewRouter(), catalog.New(settings))

	err := api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
