// cmd/history.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aceteam-ai/fiolog/internal/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent parse runs",
	Long: `Shows the most recent fiolog parse runs recorded on this machine, newest
first, with the detected mode, the table shape and where the export was written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := historyPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}

		store, err := history.OpenStore(path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}
		fmt.Fprintf(out, "Recent runs (%s)\n\n", color.HiBlackString(path))

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "STARTED\tMODE\tFILES\tROWS\tCOLUMNS\tFORMAT\tOUTPUT")
		fmt.Fprintln(w, "-------\t----\t-----\t----\t-------\t------\t------")
		for _, r := range runs {
			files := fmt.Sprintf("%d", r.Files)
			if r.SkippedFiles > 0 {
				files = fmt.Sprintf("%d (%d skipped)", r.Files, r.SkippedFiles)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Mode, files, r.Rows, r.Columns, r.Format, r.OutputPath)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}
