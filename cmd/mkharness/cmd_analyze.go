package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mkharness/internal/pricing"
	"mkharness/internal/report"
	"mkharness/internal/tasks"
	"mkharness/internal/transcript"
)

var (
	analyzeDate     string
	analyzeSessions []string
	analyzeSave     bool
	analyzeJSON     bool
	analyzeModel    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze harness session transcripts into a run report",
	Long: `Parses session transcript files for a run, aggregates token usage and
tool calls, prices the run, and prints a report with tuning
recommendations. Without --date or --sessions the most recent day with
transcripts is analyzed.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "Date to analyze (YYYY-MM-DD)")
	analyzeCmd.Flags().StringSliceVar(&analyzeSessions, "sessions", nil, "Specific session IDs (full or prefix)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save report to the harness_runs directory")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output raw JSON instead of text")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Model used for cost estimation (opus, sonnet, haiku)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	model := analyzeModel
	if model == "" {
		model = cfg.Model
	}
	rates, err := pricing.ForModel(model)
	if err != nil {
		return err
	}

	sessionsDir, err := cfg.SessionsDir()
	if err != nil {
		return err
	}

	var paths []string
	switch {
	case len(analyzeSessions) > 0:
		paths, err = transcript.FindByIDs(sessionsDir, analyzeSessions)
	case analyzeDate != "":
		var day time.Time
		day, err = time.ParseInLocation("2006-01-02", analyzeDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		paths, err = transcript.FindByDate(sessionsDir, day)
	default:
		var latest time.Time
		var ok bool
		latest, ok, err = transcript.LatestDate(sessionsDir)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "No session files found.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Auto-detected date: %s\n", latest.Format("2006-01-02"))
		paths, err = transcript.FindByDate(sessionsDir, latest)
	}
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "No matching session files found.")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d sessions...\n", len(paths))

	var sessions []*transcript.SessionMetrics
	for _, p := range paths {
		m, err := transcript.ParseSession(p)
		if err != nil {
			logger.Warn("skipping unreadable session", zap.String("path", p), zap.Error(err))
			continue
		}
		sessions = append(sessions, m)
	}
	if len(sessions) == 0 {
		return fmt.Errorf("no sessions could be parsed")
	}

	list, err := tasks.Load(cfg.TaskListPath())
	if err != nil {
		logger.Debug("task list unavailable", zap.Error(err))
		list = nil
	}

	if f, err := os.Open(cfg.ProgressLogPath()); err == nil {
		if bySession, err := transcript.ParseProgressLog(f); err == nil {
			for session, ids := range bySession {
				logger.Debug("session task completions",
					zap.String("session", session), zap.Ints("tasks", ids))
			}
		}
		f.Close()
	}

	runDate := analyzeDate
	if runDate == "" {
		runDate = latestModDate(paths)
	}

	r := report.Build(sessions, list, rates, runDate)

	var output string
	if analyzeJSON {
		output, err = report.FormatJSON(r)
		if err != nil {
			return err
		}
	} else {
		output = report.FormatText(r, sessions, rates)
	}
	fmt.Println(output)

	if analyzeSave {
		path, err := report.Save(cfg.RunsPath(), runDate, output, analyzeJSON)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\nSaved to %s\n", path)
	}
	return nil
}

// latestModDate returns the newest modification day among the files,
// formatted YYYY-MM-DD.
func latestModDate(paths []string) string {
	var latest time.Time
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	if latest.IsZero() {
		return time.Now().Format("2006-01-02")
	}
	return latest.Format("2006-01-02")
}
