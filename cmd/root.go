// cmd/root.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aceteam-ai/fiolog/internal/config"
	"github.com/aceteam-ai/fiolog/internal/logging"
	"github.com/aceteam-ai/fiolog/internal/platform"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgFile   string
	debugMode bool
	logLevel  string
	logFormat string
	logFile   string
	noColor   bool
)

// Resolved for every command in PersistentPreRunE.
var (
	cfg       = config.Default()
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// Debug logs a formatted message at debug level.
func Debug(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...))
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fiolog",
	Short: "fiolog turns fio per-job log files into one wide results table",
	Long: `fiolog reads the bandwidth, IOPS and latency logs written by fio
(write_bw_log, write_iops_log, write_lat_log), merges them across jobs and
clients, converts units (latency to ms, bandwidth to MiB/s) and exports a
single table with one row per sample and one column per job, metric and
I/O direction.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd); err != nil {
			return err
		}
		if debugMode {
			// Log the full command that was run
			fullCmd := "fiolog"
			if cmd.Name() != "fiolog" {
				fullCmd += " " + cmd.Name()
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "debug" {
					return
				}
				if f.Value.Type() == "bool" {
					fullCmd += " --" + f.Name
				} else {
					fullCmd += " --" + f.Name + "=" + f.Value.String()
				}
			})
			if len(args) > 0 {
				fullCmd += " " + strings.Join(args, " ")
			}
			Debug("command: %s", fullCmd)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) error {
	if noColor {
		color.NoColor = true
	}

	path := cfgFile
	if path == "" {
		path = platform.ConfigFile()
	}
	loaded, err := config.Load(path, cfgFile != "" && cmd != initCmd)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := logging.ParseLevel(cfg.LogLevel)
	if debugMode {
		level = slog.LevelDebug
	}

	if err := closeLog(); err != nil {
		return err
	}
	var w io.Writer = cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		f, err := logging.Open(cfg.LogFile)
		if err != nil {
			return err
		}
		w = f
		logCloser = f
	}
	logger = logging.New(w, level, cfg.LogFormat == "json")
	return nil
}

func closeLog() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		closeLog()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fiolog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
