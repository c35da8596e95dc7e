package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/diwise/dcat-mapper/internal/pkg/application/catalog"
	"github.com/diwise/dcat-mapper/internal/pkg/application/config"
	"github.com/diwise/dcat-mapper/internal/pkg/infrastructure/fetch"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/spf13/cobra"
)

type options struct {
	settings string
	indent   bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dcatmapper",
		Short: "Map harvested metadata records to DCAT JSON-LD",
		Long: `dcatmapper turns jupyterbook metadata and flat records harvested from
GitHub, GitLab, YouTube and OAI-PMH endpoints into DCAT datasets.`,
		SilenceUsage: true,
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)

	rootCmd.PersistentFlags().StringVar(&opts.settings, "settings", "", "mapper settings file or URL (language, categories and activity)")
	rootCmd.PersistentFlags().BoolVar(&opts.indent, "indent", false, "indent the JSON-LD output")

	rootCmd.AddCommand(newMapCmd(opts))
	rootCmd.AddCommand(newBookCmd(opts))
	rootCmd.AddCommand(newSourcesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (o *options) registry(cmd *cobra.Command) (catalog.Registry, error) {
	ctx := cmd.Context()
	log := logging.GetFromContext(ctx)

	settings := config.Default()

	if o.settings != "" {
		raw, err := fetch.Load(ctx, o.settings, cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}

		settings, err = config.Load(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
	}

	return catalog.New(settings.WithEnvironment(log)), nil
}

func (o *options) write(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if o.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
