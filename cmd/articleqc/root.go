package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"articleqc/internal/config"
	"articleqc/internal/logger"
	"articleqc/internal/pipeline"
)

const defaultConfigPath = "configs/articleqc.yaml"

// app carries the state shared by every subcommand.
type app struct {
	logOut     io.Writer
	cfg        *config.Config
	log        *logger.Logger
	configPath string
	logLevel   string
}

func newApp(logOut io.Writer) *app {
	return &app{logOut: logOut}
}

// execute runs the command line and logs a failure through the run logger.
func (a *app) execute(args []string) error {
	root := a.command()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		a.logger().Error("❌ Command failed", "error", err)
	}

	return err
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "articleqc",
		Short:         "Clean scraped articles and report on their quality",
		Long:          "articleqc normalizes scraped article text and dates, validates the cleaned records and writes a data quality report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file (default "+defaultConfigPath+" if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(a.newCleanCmd(), a.newValidateCmd(), a.newRunCmd())

	return root
}

// setup loads the configuration and sets up a logger tagged with a fresh run id.
func (a *app) setup() error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	a.cfg = cfg
	a.log = logger.NewLoggerWithWriter(cfg.Logging.Level, a.logOut).With("run_id", uuid.NewString())

	return nil
}

// logger returns the run logger, or a plain one when setup never ran
// (for example when the config file could not be loaded).
func (a *app) logger() *logger.Logger {
	if a.log == nil {
		a.log = logger.NewLoggerWithWriter("info", a.logOut)
	}

	return a.log
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return config.Default(), nil
		}

		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// processor validates the flag-adjusted config and builds the pipeline.
func (a *app) processor() (*pipeline.Processor, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a.log.Debug("Configuration", "config", a.cfg.String())

	return pipeline.NewProcessor(a.cfg, a.log), nil
}
