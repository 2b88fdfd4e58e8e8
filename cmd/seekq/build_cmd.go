package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newBuildCommand(cfg *cliConfig) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a canonical query string from a YAML definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := cfg.setupLogger(); err != nil {
				return err
			}
			defer cfg.cleanup()
			var reader io.Reader
			switch file {
			case "", "-":
				reader = cmd.InOrStdin()
			default:
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open query definition: %w", err)
				}
				defer f.Close()
				reader = f
			}
			def, err := loadQueryDefinition(reader)
			if err != nil {
				return err
			}
			q, err := def.toQuery()
			if err != nil {
				return err
			}
			if cfg.logger != nil {
				cfg.logger.Debug("built query", "parameters", q.Len())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Build())
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "query definition YAML (default stdin, \"-\" for stdin)")
	return cmd
}
