// Package cmd provides the command-line interface for picoforge.
//
// Configuration sources, highest priority first:
//  1. Command-line flags (--board, --sdk-path, ...)
//  2. Environment variables with the PICOFORGE_ prefix
//     (PICOFORGE_SDK_PATH, PICOFORGE_COMPILER_PATH, ...)
//  3. A .picoforge.yml configuration file in the current directory,
//     or the file named by --config
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picoforge/picoforge/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "picoforge",
	Short: "Project generator for the Raspberry Pi Pico SDK",
	Long: `Picoforge scaffolds a build-ready Raspberry Pi Pico SDK project from a set
of selected hardware features and a target board.

It generates the CMake build description, a minimal entry-point source file
with example code for every selected feature, and (optionally) VS Code
configuration wired to the chosen debugger.

Quick Start:
  picoforge new blink -f gpio           Generate a project using the GPIO feature
  picoforge new probe -f spi -f i2c     Multiple features
  picoforge list features               Show available features
  picoforge list boards                 Show boards discovered in the SDK`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .picoforge.yml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires viper to the config file and PICOFORGE_ environment
// variables. A missing config file is not an error; flags and env vars carry
// the defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".picoforge")
	}

	viper.SetEnvPrefix("PICOFORGE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	_ = viper.ReadInConfig()
}

// newLogger builds the logger shared by all commands from the persistent
// logging flags.
func newLogger() logging.Logger {
	return logging.New(&logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
}
