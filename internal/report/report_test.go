package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkharness/internal/pricing"
	"mkharness/internal/tasks"
	"mkharness/internal/transcript"
)

func fixtureSessions() []*transcript.SessionMetrics {
	return []*transcript.SessionMetrics{
		{
			SessionID:        "sess-aaaa-1111",
			APICalls:         20,
			InputTokens:      1_000_000,
			OutputTokens:     200_000,
			CacheWriteTokens: 500_000,
			CacheReadTokens:  4_500_000,
			ToolCalls:        40,
			ToolTypes:        map[string]int{"Read": 25, "Edit": 10, "Bash": 5},
			DurationMinutes:  42.0,
		},
		{
			SessionID:       "sess-bbbb-2222",
			APICalls:        2, // below the active threshold
			InputTokens:     10_000,
			OutputTokens:    1_000,
			ToolCalls:       1,
			ToolTypes:       map[string]int{"Read": 1},
			DurationMinutes: 1.5,
		},
	}
}

func fixtureTasks() tasks.List {
	return tasks.List{
		{ID: 1, Complexity: "L", Passes: true},
		{ID: 2, Complexity: "L", Passes: true},
		{ID: 3, Complexity: "L", Passes: true},
		{ID: 4, Complexity: "L", RelatedTo: []int{5}},
		{ID: 5, Complexity: "M"},
	}
}

func TestBuild_Totals(t *testing.T) {
	rates, err := pricing.ForModel("opus")
	require.NoError(t, err)

	r := Build(fixtureSessions(), fixtureTasks(), rates, "2026-02-20")

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, "2026-02-20", r.RunDate)
	assert.Equal(t, []string{"sess-aaaa-1111", "sess-bbbb-2222"}, r.Sessions)
	assert.Equal(t, 22, r.TotalAPICalls)
	assert.Equal(t, int64(1_010_000), r.TotalInputTokens)
	assert.Equal(t, int64(201_000), r.TotalOutputTokens)
	assert.Equal(t, int64(500_000), r.TotalCacheWriteTokens)
	assert.Equal(t, int64(4_500_000), r.TotalCacheReadTokens)
	assert.Equal(t, 41, r.TotalToolCalls)
	assert.Equal(t, 5, r.TotalTasks)
	assert.Equal(t, 3, r.TasksCompleted)

	// Opus pricing over both sessions:
	// input  1,010,000 * 15.00/M = 15.15
	// output   201,000 * 75.00/M = 15.075
	// cache w  500,000 * 18.75/M =  9.375
	// cache r 4,500,000 * 1.50/M =  6.75
	assert.InDelta(t, 46.35, r.TotalCostUSD, 0.0001)
}

func TestRecommendations_Rules(t *testing.T) {
	rates, err := pricing.ForModel("opus")
	require.NoError(t, err)
	r := Build(fixtureSessions(), fixtureTasks(), rates, "2026-02-20")

	joined := strings.Join(r.Recommendations, "\n")
	// 4.5M cache reads of 5M cache tokens = 90% hit rate.
	assert.Contains(t, joined, "GOOD CACHE HIT RATE (90%)")
	// 3 tasks over 1 active session.
	assert.NotContains(t, joined, "LOW TASKS/SESSION")
	// Cost per task is 46.35/3 = 15.45, well over the $2 threshold.
	assert.Contains(t, joined, "COST PER TASK: $15.45 average.")
	assert.Contains(t, joined, "Consider using Sonnet")
	// 4 L-complexity tasks.
	assert.Contains(t, joined, "HIGH L-COMPLEXITY COUNT (4)")
	// One cross-referenced task.
	assert.Contains(t, joined, "RELATED TASKS: 1 tasks")
}

func TestRecommendations_LowCacheAndReadHeavy(t *testing.T) {
	sessions := []*transcript.SessionMetrics{{
		SessionID:        "sess-c",
		APICalls:         30,
		InputTokens:      2_000_000,
		OutputTokens:     10_000,
		CacheWriteTokens: 900_000,
		CacheReadTokens:  100_000,
		ToolTypes:        map[string]int{"Read": 120, "Edit": 5, "Write": 5},
	}}
	rates, _ := pricing.ForModel("sonnet")
	r := Build(sessions, tasks.List{{ID: 1, Passes: true}}, rates, "2026-02-21")

	joined := strings.Join(r.Recommendations, "\n")
	assert.Contains(t, joined, "LOW CACHE HIT RATE (10%)")
	assert.Contains(t, joined, "LOW OUTPUT RATIO (0.5%)")
	assert.Contains(t, joined, "LOW TASKS/SESSION (1.0)")
	assert.Contains(t, joined, "HIGH READ/EDIT RATIO (12:1)")
}

func TestFormatText(t *testing.T) {
	rates, err := pricing.ForModel("opus")
	require.NoError(t, err)
	sessions := fixtureSessions()
	r := Build(sessions, fixtureTasks(), rates, "2026-02-20")

	out := FormatText(r, sessions, rates)

	assert.Contains(t, out, "HARNESS RUN REPORT — 2026-02-20")
	assert.Contains(t, out, "Tasks:            3/5 completed")
	assert.Contains(t, out, "Total cost:       $46.35")
	assert.Contains(t, out, "4,500,000")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "sess-aaaa-11")
	assert.Contains(t, out, "Total tool calls: 41")
	assert.Contains(t, out, "Cost per task:        $15.45")
	assert.Contains(t, out, "## Recommendations")
}

func TestFormatJSONAndSave(t *testing.T) {
	rates, _ := pricing.ForModel("haiku")
	r := Build(nil, nil, rates, "2026-02-22")

	out, err := FormatJSON(r)
	require.NoError(t, err)
	assert.Contains(t, out, `"run_date": "2026-02-22"`)

	dir := filepath.Join(t.TempDir(), "harness_runs")
	path, err := Save(dir, r.RunDate, out, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run_2026-02-22.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}
