// cmd/parse.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aceteam-ai/fiolog/internal/export"
	"github.com/aceteam-ai/fiolog/internal/fio"
	"github.com/aceteam-ai/fiolog/internal/history"
	"github.com/aceteam-ai/fiolog/internal/platform"
	"github.com/aceteam-ai/fiolog/internal/ui"
	"github.com/spf13/cobra"
)

var (
	parseFormat      string
	parseOutput      string
	parseOutputDir   string
	parseSummary     bool
	parseNoHistory   bool
	parseInteractive bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <directory>",
	Short: "Merge the fio logs in a directory and export one results table",
	Long: `Reads every fio log in <directory> and writes a single table with one row
per sample index and one column per job, metric and I/O direction.

Files named <job>_<metric>.log are treated as one standalone fio run. When any
file carries a numbered suffix (<job>_<metric>.log.<n>, as written by fio in
client/server mode) only those files are read and samples from different
clients are combined: latencies are averaged, bandwidth and IOPS are summed.

Latencies are converted to milliseconds and bandwidth to MiB/s. Cells with no
sample are written as 0.`,
	Example: `  # Export to an Excel workbook in the current directory
  fiolog parse ./results

  # Export to CSV at a fixed path and print a column summary
  fiolog parse ./results -f csv -o run1.csv --summary

  # Pick format and destination interactively
  fiolog parse ./results -i`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	dir := args[0]
	out := cmd.OutOrStdout()
	status := ui.NewStatusLine(out)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("could not read directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName = parseFormat
	}
	outputDir := cfg.OutputDir
	if cmd.Flags().Changed("output-dir") {
		outputDir = parseOutputDir
	}
	if parseInteractive {
		formatName, outputDir, err = askExportTarget(out, formatName, outputDir)
		if err != nil {
			return err
		}
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	started := time.Now()
	var res *fio.Result
	status.Step(1, 2, fmt.Sprintf("Reading fio logs in %s", dir))
	err = ui.RunWithProgress(out, "Merging samples", func(s *ui.Spinner) error {
		var perr error
		res, perr = fio.ProcessWithProgress(os.DirFS(dir), logger, s.UpdateDetail)
		return perr
	})
	if err != nil {
		return err
	}
	for _, f := range res.SkippedFiles() {
		status.Warning(fmt.Sprintf("Skipped %s: %v", f.Name, f.Err))
	}
	if n := res.SkippedRecords(); n > 0 {
		status.Warning(fmt.Sprintf("Dropped %d malformed log line(s)", n))
	}
	status.Info(fmt.Sprintf("%s run: %d file(s), %d rows × %d columns",
		res.Mode, len(res.Files)-len(res.SkippedFiles()), res.Table.Len(), len(res.Table.Columns)))

	path := parseOutput
	if path == "" {
		path = filepath.Join(outputDir, export.Filename(format, started))
	}
	w, err := export.New(format)
	if err != nil {
		return err
	}
	status.Step(2, 2, fmt.Sprintf("Exporting to %s", format))
	err = ui.RunWithSpinner(out, fmt.Sprintf("Writing %s table", format), func() error {
		return w.WriteTable(path, res.Table)
	})
	if err != nil {
		return err
	}
	logger.Info("exported table", "path", path, "format", string(format))

	shown := path
	if ui.IsTerminal(out) {
		shown = ui.FileLink(path)
	}
	status.Success(fmt.Sprintf("Data has been successfully exported to %s", shown))

	if parseSummary {
		fmt.Fprintln(out, ui.RenderSummary(fmt.Sprintf("fio results (%s)", res.Mode), res.Table))
	}

	if cfg.History.Enabled && !parseNoHistory {
		if err := recordRun(dir, path, format, res, started, time.Now()); err != nil {
			logger.Warn("could not record run history", "error", err)
			status.Fail(fmt.Sprintf("Run not recorded in history: %v", err))
		}
	}
	return nil
}

// askExportTarget prompts for the export format and output directory.
func askExportTarget(out io.Writer, format, outputDir string) (string, string, error) {
	if !ui.IsTerminal(out) {
		return "", "", errors.New("--interactive requires a terminal")
	}
	choices := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		choices[i] = string(f)
	}
	format, err := ui.Choose("Export format:", choices, format)
	if err != nil {
		return "", "", err
	}
	outputDir, err = ui.Ask("Output directory:", outputDir)
	if err != nil {
		return "", "", err
	}
	return format, outputDir, nil
}

// recordRun appends the run to the local history database.
func recordRun(dir, path string, format export.Format, res *fio.Result, started, completed time.Time) error {
	store, err := history.OpenStore(historyPath())
	if err != nil {
		return err
	}
	defer store.Close()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}
	hostname, hostPlatform := history.HostFacts()
	rec, err := store.Insert(history.RunRecord{
		Directory:      absDir,
		Mode:           res.Mode.String(),
		Format:         string(format),
		OutputPath:     path,
		Files:          len(res.Files),
		SkippedFiles:   len(res.SkippedFiles()),
		SkippedRecords: res.SkippedRecords(),
		Rows:           res.Table.Len(),
		Columns:        len(res.Table.Columns),
		StartedAt:      started,
		CompletedAt:    completed,
		DurationMs:     completed.Sub(started).Milliseconds(),
		Hostname:       hostname,
		Platform:       hostPlatform,
	})
	if err != nil {
		return err
	}
	Debug("recorded run %s", rec.RunID)
	return nil
}

func historyPath() string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return platform.HistoryFile()
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "excel", "Export format: excel, csv or sqlite")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output file (default fio-results-<timestamp>.<ext> in the output directory)")
	parseCmd.Flags().StringVar(&parseOutputDir, "output-dir", ".", "Directory for the default output file")
	parseCmd.Flags().BoolVar(&parseSummary, "summary", false, "Print a per-column summary after exporting")
	parseCmd.Flags().BoolVar(&parseNoHistory, "no-history", false, "Do not record this run in the history database")
	parseCmd.Flags().BoolVarP(&parseInteractive, "interactive", "i", false, "Choose format and output directory interactively")
}
