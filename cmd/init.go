// cmd/init.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aceteam-ai/fiolog/internal/config"
	"github.com/aceteam-ai/fiolog/internal/export"
	"github.com/aceteam-ai/fiolog/internal/platform"
	"github.com/aceteam-ai/fiolog/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initFormat    string
	initOutputDir string
	initForce     bool
	initNoHistory bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fiolog config file with your default export settings",
	Long: `Creates the fiolog config file (default $HOME/.fiolog/config.yaml, or the path
given with --config). On a terminal you are asked for the default export
format and output directory; otherwise the values come from flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		status := ui.NewStatusLine(out)

		path := cfgFile
		if path == "" {
			path = platform.ConfigFile()
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
		}

		c := config.Default()
		c.Format = initFormat
		c.OutputDir = initOutputDir
		c.History.Enabled = !initNoHistory

		if ui.IsTerminal(out) && !cmd.Flags().Changed("format") && !cmd.Flags().Changed("output-dir") {
			choices := make([]string, len(export.Formats))
			for i, f := range export.Formats {
				choices[i] = string(f)
			}
			format, err := ui.Choose("Default export format:", choices, c.Format)
			if err != nil {
				return err
			}
			c.Format = format
			if c.OutputDir, err = ui.Ask("Default output directory:", c.OutputDir); err != nil {
				return err
			}
		}

		if _, err := export.ParseFormat(c.Format); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("could not create config directory: %w", err)
		}
		if err := c.Save(path); err != nil {
			return err
		}
		status.Success(fmt.Sprintf("Config written to %s", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initFormat, "format", "f", "excel", "Default export format: excel, csv or sqlite")
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", ".", "Default directory for exported tables")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	initCmd.Flags().BoolVar(&initNoHistory, "no-history", false, "Disable the local run history")
}
