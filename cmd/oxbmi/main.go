package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/origadmin/oxbmi/internal/config"
	"github.com/origadmin/oxbmi/internal/report"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string
	var noClear bool

	fail := func(err error) error {
		fmt.Fprintf(stderr, "\nError: %v\n", err)
		return err
	}

	cmd := &cobra.Command{
		Use:           config.Application,
		Short:         config.Description,
		Args:          cobra.NoArgs,
		Version:       buildVersion(version, commit, date, builtBy, treeState).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return fail(err)
			}
			if noClear {
				cfg.ClearScreen = false
			}

			closeLog, err := setupLogging(cfg, stderr)
			if err != nil {
				return fail(err)
			}
			defer closeLog()
			slog.Info("Starting "+config.Application, "format", cfg.Format, "interactive", cfg.Interactive())

			// Keep structured output parseable by sending prompts to stderr.
			term := stdout
			if cfg.Format != config.FormatText {
				term = stderr
			}
			p := report.NewPresenter(cfg, stdin, term, stdout)
			if err := p.Run(); err != nil {
				slog.Error("Session failed", "error", err)
				return fail(err)
			}
			slog.Info(config.Application + " finished successfully.")
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-file", "", "Path to a file where logs should be written. If empty, logs go to stderr.")
	flags.StringP("format", "f", config.FormatText, "Report format: text, json or yaml")
	flags.Uint16("height", 0, "Height in centimeters; prompts when 0")
	flags.Uint16("weight", 0, "Weight in kilograms; prompts when 0")
	flags.BoolVar(&noClear, "no-clear", false, "Do not clear the terminal before prompting")

	for key, name := range map[string]string{
		"debug":    "debug",
		"log_file": "log-file",
		"format":   "format",
		"height":   "height",
		"weight":   "weight",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}

// setupLogging installs the default slog logger and returns a function
// closing the log file, if one was opened.
func setupLogging(cfg *config.Config, stderr io.Writer) (func(), error) {
	logWriter := stderr
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		logWriter = f
		closeFn = func() { _ = f.Close() }
	}

	logLevel := slog.LevelWarn
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))
	return closeFn, nil
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
