package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type baseConfiguration struct {
	// Optional YAML file with values for any flag.
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVL"

	keyConfig = "config"

	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
)

func newRootCmd() *cobra.Command {
	config := &baseConfiguration{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "avl",
		Short:         "Build, inspect and stress AVL trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	config.addConfigurationFlags(cmd)

	cmd.AddCommand(newRandomCmd(config))
	cmd.AddCommand(newOpsCmd(config))
	cmd.AddCommand(newBoundCmd(config))

	return cmd
}

func (r *baseConfiguration) addConfigurationFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&r.CfgFile, keyConfig, "", "YAML config file with flag values")
	cmd.PersistentFlags().StringVar(&r.LogLevel, flagNameLogLevel, "info", "logging level, one of: trace, debug, info, warn, error, disabled")
	cmd.PersistentFlags().StringVar(&r.LogFormat, flagNameLogFormat, "console", "log format, one of: console, json")
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	var errs []error

	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}

	// flags are final now, including the logging ones
	l, err := newLogger(cmd.ErrOrStderr(), config.LogFormat, config.LogLevel)
	if err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	} else {
		config.log = l
	}

	return errors.Join(errs...)
}

// initializeConfig reads in the config file and environment variables if set.
func (r *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	// The config file is only read when asked for, and then it must exist.
	if r.CfgFile != "" {
		v.SetConfigFile(r.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// A flag like --max-n binds to AVL_MAX_N, see bindFlags.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	return nil
}

// bindFlags applies values from viper (config file and environment) to
// every flag the user did not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})

	return errors.Join(bindFlagErr...)
}
