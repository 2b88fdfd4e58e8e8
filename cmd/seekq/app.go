package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	"pkt.systems/seekd/internal/logfields"
)

const (
	logLevelKey  = "log-level"
	logOutputKey = "log-output"
)

func submain(ctx context.Context) int {
	baseLogger := pslog.LoggerFromEnv(
		pslog.WithEnvPrefix("SEEKQ_LOG_"),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, MinLevel: pslog.InfoLevel}),
		pslog.WithEnvWriter(os.Stderr),
	).With("app", "seekq")
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if err != context.Canceled {
			logfields.WithSubsystem(baseLogger, "cli.root").Error("command failed", "error", err)
		}
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cfg := &cliConfig{}
	cmd := &cobra.Command{
		Use:           "seekq",
		Short:         "seekq builds and inspects seekd canonical query strings",
		SilenceErrors: true,
		Example: `
  # Build a canonical query string from a YAML definition
  seekq build -f query.yaml

  # Read the definition from stdin
  cat query.yaml | seekq build -f -

  # Decode a canonical query string into YAML
  seekq parse 'hitsPerPage=5&query=tv'
`,
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "none", "log level (trace|debug|info|warn|error|none)")
	flags.String("log-output", "", "log output path (default stderr)")

	mustBindFlag(logLevelKey, "SEEKQ_LOG_LEVEL", flags.Lookup("log-level"))
	mustBindFlag(logOutputKey, "SEEKQ_LOG_OUTPUT", flags.Lookup("log-output"))

	cmd.AddCommand(
		newBuildCommand(cfg),
		newParseCommand(cfg),
		newVersionCommand(),
	)

	return cmd
}

func mustBindFlag(key, env string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("flag for key %s not found", key))
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
	if env != "" {
		if err := viper.BindEnv(key, env); err != nil {
			panic(err)
		}
	}
}

type cliConfig struct {
	logger      pslog.Base
	logClosers  []io.Closer
	loggerReady bool
}

func (c *cliConfig) setupLogger() error {
	if c.loggerReady {
		return nil
	}
	levelStr := strings.TrimSpace(strings.ToLower(viper.GetString(logLevelKey)))
	if levelStr == "" {
		levelStr = "none"
	}
	if levelStr == "none" || levelStr == "disabled" || levelStr == "off" {
		c.logger = nil
		c.loggerReady = true
		return nil
	}
	level, ok := pslog.ParseLevel(levelStr)
	if !ok {
		return fmt.Errorf("invalid log level %q", levelStr)
	}
	if level == pslog.NoLevel || level == pslog.Disabled {
		c.logger = nil
		c.loggerReady = true
		return nil
	}
	var writer io.Writer = os.Stderr
	switch output := viper.GetString(logOutputKey); output {
	case "", "stderr":
	case "-", "stdout":
		writer = os.Stdout
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.logClosers = append(c.logClosers, f)
		writer = f
	}
	c.logger = logfields.WithSubsystem(pslog.NewStructured(writer), "cli").LogLevel(level)
	c.loggerReady = true
	return nil
}

func (c *cliConfig) cleanup() {
	for _, closer := range c.logClosers {
		_ = closer.Close()
	}
	c.logClosers = nil
	c.logger = nil
	c.loggerReady = false
}
