package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exitCode carries a non-zero process status out of cobra.
type exitCode int

func (c exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

// newRootCommand builds the CLI. Flags default to the values loaded from the
// environment and override them when set.
func newRootCommand(cfg Config, cat catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "schemacheck [flags] FILE...",
		Short:         "Validate YAML and JSON records against built-in schemas",
		Long:          `schemacheck decodes every record of the given files and validates it against the schema of the selected kind. Invalid records are logged with all their violations.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := run(cmd.Context(), cfg, cat, args, cmd.ErrOrStderr()); code != exitOK {
				return exitCode(code)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Kind, "kind", "k", cfg.Kind, "record kind: "+strings.Join(cat.kinds(), ", "))
	flags.BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "stop at the first invalid record")
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of files decoded concurrently")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level, empty for the environment preset")

	cmd.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds of the catalog",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range cat.kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
		},
	})

	return cmd
}
