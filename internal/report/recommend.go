package report

import (
	"fmt"

	"mkharness/internal/tasks"
	"mkharness/internal/transcript"
)

// Sessions with more than this many API calls count as "active" when
// computing tasks-per-session.
const activeSessionAPICalls = 5

// Recommendations derives tuning advice from the aggregated metrics.
func Recommendations(r *RunReport, sessions []*transcript.SessionMetrics, list tasks.List) []string {
	var recs []string

	// Cache efficiency.
	totalCache := r.TotalCacheWriteTokens + r.TotalCacheReadTokens
	if totalCache > 0 {
		hitRate := float64(r.TotalCacheReadTokens) / float64(totalCache)
		if hitRate < 0.5 {
			recs = append(recs, fmt.Sprintf(
				"LOW CACHE HIT RATE (%.0f%%): Sessions are rebuilding context too often. "+
					"Consider continuing sessions (--continue) instead of starting fresh, or batch "+
					"related tasks in the same session to reuse cached context.", hitRate*100))
		} else if hitRate > 0.8 {
			recs = append(recs, fmt.Sprintf(
				"GOOD CACHE HIT RATE (%.0f%%): Context reuse is efficient.", hitRate*100))
		}
	}

	// Output token ratio.
	if r.TotalInputTokens > 0 {
		outputRatio := float64(r.TotalOutputTokens) / float64(r.TotalInputTokens+r.TotalOutputTokens)
		if outputRatio < 0.05 {
			recs = append(recs, fmt.Sprintf(
				"LOW OUTPUT RATIO (%.1f%%): Most tokens are input/context, not generation. "+
					"Consider trimming CLAUDE.md, reducing system prompt size, or using more targeted "+
					"task descriptions.", outputRatio*100))
		}
	}

	// Session count vs task count.
	active := 0
	for _, s := range sessions {
		if s.APICalls > activeSessionAPICalls {
			active++
		}
	}
	if active > 0 {
		perSession := float64(r.TasksCompleted) / float64(active)
		if perSession < 2 {
			recs = append(recs, fmt.Sprintf(
				"LOW TASKS/SESSION (%.1f): Each session completes few tasks. "+
					"Batch more S/M complexity tasks per session, or combine related tasks.", perSession))
		} else if perSession > 5 {
			recs = append(recs, fmt.Sprintf(
				"HIGH TASKS/SESSION (%.1f): Risk of context overflow. "+
					"Consider capping at 4-5 tasks per session to avoid compaction.", perSession))
		}
	}

	// Cost per task.
	if r.TasksCompleted > 0 {
		costPerTask := r.TotalCostUSD / float64(r.TasksCompleted)
		recs = append(recs, fmt.Sprintf("COST PER TASK: $%.2f average.", costPerTask))
		if costPerTask > 2.00 {
			recs = append(recs,
				"Consider using Sonnet for S-complexity tasks (test-only, simple edits) "+
					"to reduce cost. Reserve Opus for L-complexity and functional tasks.")
		}
	}

	// Task complexity distribution.
	if large := list.ComplexityCounts()["L"]; large > 3 {
		recs = append(recs, fmt.Sprintf(
			"HIGH L-COMPLEXITY COUNT (%d): Break large tasks into "+
				"smaller pieces to reduce risk of context overflow and cascading failures.", large))
	}

	// Tool usage patterns.
	allTools := make(map[string]int)
	for _, s := range sessions {
		for tool, count := range s.ToolTypes {
			allTools[tool] += count
		}
	}
	readCalls := allTools["Read"]
	editCalls := allTools["Edit"] + allTools["Write"]
	if readCalls > 0 && editCalls > 0 {
		ratio := float64(readCalls) / float64(editCalls)
		if ratio > 10 {
			recs = append(recs, fmt.Sprintf(
				"HIGH READ/EDIT RATIO (%.0f:1): Lots of exploration relative to "+
					"changes. Add more target_files hints to tasks to reduce exploration overhead.", ratio))
		}
	}

	// Related task consolidation.
	if related := list.Related(); len(related) > 0 {
		recs = append(recs, fmt.Sprintf(
			"RELATED TASKS: %d tasks have cross-references. "+
				"Schedule related tasks in the same session for better context reuse.", len(related)))
	}

	return recs
}
