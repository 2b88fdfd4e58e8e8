package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pkt.systems/seekd/query"
)

func newParseCommand(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <querystring>",
		Short: "Decode a canonical query string into YAML",
		Long: `Decode a canonical query string into a YAML map of raw parameters.
Malformed segments are skipped, matching the SDK's tolerant decoder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := cfg.setupLogger(); err != nil {
				return err
			}
			defer cfg.cleanup()
			q := query.Parse(args[0])
			if cfg.logger != nil {
				cfg.logger.Debug("parsed query", "parameters", q.Len())
			}
			if q.Len() == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "{}")
				return err
			}
			data, err := yaml.Marshal(q.Map())
			if err != nil {
				return fmt.Errorf("encode parameters: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	return cmd
}
