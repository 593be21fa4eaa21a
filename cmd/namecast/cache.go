// Package main provides the namecast CLI application.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/namecast/namecast/cache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newCacheCmd groups cache maintenance subcommands.
func newCacheCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and migrate the translation cache",
	}

	cmd.AddCommand(newCacheExportCmd(flags))
	cmd.AddCommand(newCacheImportCmd(flags))

	return cmd
}

func newCacheExportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export cached translations as JSON (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileStore(flags)
			if err != nil {
				return err
			}

			metadata := map[string]string{"source": "namecast"}
			exporter := cache.NewExporter(store)

			if len(args) == 1 {
				if err := exporter.ExportToFile(args[0], metadata); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", store.Len(), args[0])
				return nil
			}
			return exporter.Export(cmd.OutOrStdout(), metadata)
		},
	}
}

func newCacheImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import cached translations from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileStore(flags)
			if err != nil {
				return err
			}

			result, err := cache.NewImporter(store).ImportFromFile(args[0])
			if err != nil {
				return err
			}
			if err := store.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d entries (%d failed)\n", result.Imported, result.Failed)
			return nil
		},
	}
}

func openFileStore(flags *rootFlags) (*cache.FileStore, error) {
	dir := viper.GetString("cache_dir")
	if dir == "" {
		dir = flags.CacheDir
	}
	return cache.NewFileStore(dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
