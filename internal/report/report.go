// Package report aggregates session metrics and the task list into a
// harness run report, generates tuning recommendations, and renders the
// report as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mkharness/internal/pricing"
	"mkharness/internal/tasks"
	"mkharness/internal/transcript"
)

// RunReport is the aggregate view of one harness run (one or more
// sessions on a given day).
type RunReport struct {
	RunID    string   `json:"run_id"`
	RunDate  string   `json:"run_date"`
	Sessions []string `json:"sessions"`

	TotalTasks     int `json:"total_tasks"`
	TasksCompleted int `json:"tasks_completed"`

	TotalAPICalls         int   `json:"total_api_calls"`
	TotalInputTokens      int64 `json:"total_input_tokens"`
	TotalOutputTokens     int64 `json:"total_output_tokens"`
	TotalCacheWriteTokens int64 `json:"total_cache_write_tokens"`
	TotalCacheReadTokens  int64 `json:"total_cache_read_tokens"`
	TotalToolCalls        int   `json:"total_tool_calls"`

	TotalCostUSD float64 `json:"total_cost_usd"`

	Recommendations []string `json:"recommendations"`
}

// SessionCost prices one session with the given rates.
func SessionCost(m *transcript.SessionMetrics, rates pricing.Rates) float64 {
	return rates.Cost(m.InputTokens, m.OutputTokens, m.CacheWriteTokens, m.CacheReadTokens)
}

// Build aggregates parsed sessions and the task list into a run report,
// including recommendations.
func Build(sessions []*transcript.SessionMetrics, list tasks.List, rates pricing.Rates, runDate string) *RunReport {
	r := &RunReport{
		RunID:          uuid.NewString(),
		RunDate:        runDate,
		TotalTasks:     len(list),
		TasksCompleted: list.Completed(),
	}
	for _, s := range sessions {
		r.Sessions = append(r.Sessions, s.SessionID)
		r.TotalAPICalls += s.APICalls
		r.TotalInputTokens += s.InputTokens
		r.TotalOutputTokens += s.OutputTokens
		r.TotalCacheWriteTokens += s.CacheWriteTokens
		r.TotalCacheReadTokens += s.CacheReadTokens
		r.TotalToolCalls += s.ToolCalls
		r.TotalCostUSD += SessionCost(s, rates)
	}
	r.Recommendations = Recommendations(r, sessions, list)
	return r
}

// FormatJSON renders the report as indented JSON.
func FormatJSON(r *RunReport) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save writes a rendered report into the runs directory, creating it if
// needed, and returns the written path.
func Save(dir, runDate, output string, asJSON bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create runs dir: %w", err)
	}
	ext := "txt"
	if asJSON {
		ext = "json"
	}
	path := filepath.Join(dir, fmt.Sprintf("run_%s.%s", runDate, ext))
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
