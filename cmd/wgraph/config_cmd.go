package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/config"
)

// newConfigCmd prints the effective configuration as TOML after defaults,
// config file, WGRAPH_* env and flags have been merged.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return cfg.Write(cmd.OutOrStdout())
		},
	}
}
