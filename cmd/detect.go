// cmd/detect.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aceteam-ai/fiolog/internal/fio"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// detectCmd reports how parse would treat a directory without reading any samples.
var detectCmd = &cobra.Command{
	Use:   "detect <directory>",
	Short: "Show the detected run mode and which log files would be merged",
	Long: `Lists the files in <directory>, reports whether they come from a standalone
fio run or a client/server run, and shows the job and metric parsed from each
filename. Files marked "no" in the SELECTED column are ignored by parse.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		out := cmd.OutOrStdout()

		names, err := fio.ListNames(os.DirFS(dir))
		if err != nil {
			return fmt.Errorf("could not read directory: %w", err)
		}
		mode := fio.DetectMode(names)
		fmt.Fprintf(out, "Mode: %s\n", color.CyanString(mode.String()))
		if len(names) == 0 {
			fmt.Fprintln(out, "No files found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tSELECTED\tSOURCE\tMETRIC\tKIND")
		fmt.Fprintln(w, "----\t--------\t------\t------\t----")
		selected := 0
		for _, name := range names {
			sel := "no"
			if mode.Selects(name) {
				sel = "yes"
				selected++
			}
			source, metric, err := fio.ParseFilename(name)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, sel, "-", "-", "malformed name")
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, sel, source, metric, kindLabel(metric))
		}
		w.Flush()

		fmt.Fprintf(out, "\n%d of %d file(s) selected\n", selected, len(names))
		return nil
	},
}

func kindLabel(k fio.MetricKind) string {
	switch {
	case k.IsLatency():
		return "latency (ms)"
	case k == fio.Bandwidth:
		return "bandwidth (MiB/s)"
	case k == fio.IOPS:
		return "iops"
	default:
		return "unknown"
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
