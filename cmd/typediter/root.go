package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	keyConfig     = "config"
	keyConvention = "convention"
	keyOnError    = "on_error"
	keyLogLevel   = "log_level"
	keyLogFormat  = "log_format"
	keyOutput     = "output"
)

const envPrefix = "TYPEDITER"

// Error policies for the cast command.
const (
	policySkip = "skip"
	policyFail = "fail"
)

var errInvalidConfig = errors.New("invalid configuration")

// app is the state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "typediter",
		Short: "Classify constructor shapes and cast raw elements through them",
		Long: `typediter derives the calling convention of a constructor from its parameters
and casts raw elements (scalars, sequences, mappings) into constructed values.

Constructor shapes come from YAML descriptor files (classify, cast) or from
Go packages (inspect).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("convention", "auto", "Calling convention (auto, one, varargs, kwargs, k2o, adaptive)")
	flags.String("on-error", policySkip, "Element failure policy (skip, fail)")
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.StringP("output", "o", "yaml", "Output format (yaml, json)")

	for key, flag := range map[string]string{
		keyConfig:     "config",
		keyConvention: "convention",
		keyOnError:    "on-error",
		keyLogLevel:   "log-level",
		keyLogFormat:  "log-format",
		keyOutput:     "output",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newClassifyCmd(a),
		newCastCmd(a),
		newInspectCmd(a),
	)

	return rootCmd
}

// setup loads configuration and configures logging before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	if err := a.setupLogging(cmd.ErrOrStderr()); err != nil {
		return err
	}

	a.runID = uuid.New().String()

	return a.validate()
}

// loadConfig loads configuration from the config file and environment.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if configFile := a.v.GetString(keyConfig); configFile != "" {
		a.v.SetConfigFile(configFile)

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// setupLogging configures the logger level and formatter.
func (a *app) setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.logger.SetOutput(w)
	a.logger.SetLevel(level)

	switch format := a.v.GetString(keyLogFormat); format {
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		a.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("%w: log format %q", errInvalidConfig, format)
	}

	return nil
}

func (a *app) validate() error {
	switch policy := a.v.GetString(keyOnError); policy {
	case policySkip, policyFail:
	default:
		return fmt.Errorf("%w: on_error %q (expected skip or fail)", errInvalidConfig, policy)
	}

	switch output := a.v.GetString(keyOutput); output {
	case formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: output %q (expected yaml or json)", errInvalidConfig, output)
	}

	return nil
}

// log returns the logger carrying the run id.
func (a *app) log() *logrus.Entry {
	return a.logger.WithField("run_id", a.runID)
}
