package main

import (
	"fmt"
	"runtime"

	"github.com/diwise/dcat-mapper/internal/pkg/application/jupyterbook"
	"github.com/diwise/dcat-mapper/internal/pkg/infrastructure/fetch"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/spf13/cobra"
)

func newMapCmd(opts *options) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "map [input]",
		Short: "Map a single record to a DCAT dataset",
		Long: `Map a single harvested record to a DCAT dataset. The input may be a file,
an http(s) URL or "-" for stdin. Stdin is read when no input is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			raw, err := fetch.Load(cmd.Context(), firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			dataset, err := registry.Map(cmd.Context(), source, raw)
			if err != nil {
				return err
			}

			return opts.write(cmd, dataset)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "record source (see the sources command)")
	cmd.MarkFlagRequired("source")

	return cmd
}

func newBookCmd(opts *options) *cobra.Command {
	var metadata, configuration string

	cmd := &cobra.Command{
		Use:   "book [input]",
		Short: "Map a jupyterbook and every chapter in it",
		Long: `Map a jupyterbook to one dataset for the book followed by one per chapter.
Either pass the book's metadata.yml and _config.yml through --metadata and
--config, or a JSON input document as a file, URL or on stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			var in jupyterbook.Input

			if metadata != "" || configuration != "" {
				var meta, conf []byte

				if metadata != "" {
					if meta, err = fetch.Load(ctx, metadata, cmd.InOrStdin()); err != nil {
						return err
					}
				}
				if configuration != "" {
					if conf, err = fetch.Load(ctx, configuration, cmd.InOrStdin()); err != nil {
						return err
					}
				}

				in, err = jupyterbook.FromYAML(meta, conf)
			} else {
				var raw []byte
				if raw, err = fetch.Load(ctx, firstArg(args), cmd.InOrStdin()); err != nil {
					return err
				}

				in, err = jupyterbook.Parse(raw)
			}

			if err != nil {
				return err
			}

			datasets, err := registry.MapBook(ctx, in)
			if err != nil {
				return err
			}

			return opts.write(cmd, datasets)
		},
	}

	cmd.Flags().StringVar(&metadata, "metadata", "", "the book's metadata.yml (file or URL)")
	cmd.Flags().StringVar(&configuration, "config", "", "the book's _config.yml (file or URL)")

	return cmd
}

func newSourcesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the record sources that can be mapped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			for _, s := range registry.Sources() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dcatmapper version: %s\n", buildinfo.SourceVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
