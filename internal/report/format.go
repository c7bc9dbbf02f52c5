package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"mkharness/internal/pricing"
	"mkharness/internal/transcript"
)

// FormatText renders the report in the fixed human-readable layout.
func FormatText(r *RunReport, sessions []*transcript.SessionMetrics, rates pricing.Rates) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("%s", rule)
	line("  HARNESS RUN REPORT — %s", r.RunDate)
	line("%s", rule)
	line("")

	// Summary
	line("## Summary")
	line("  Sessions:         %d", len(sessions))
	line("  Tasks:            %d/%d completed", r.TasksCompleted, r.TotalTasks)
	line("  Total API calls:  %d", r.TotalAPICalls)
	line("  Total cost:       $%.2f", r.TotalCostUSD)
	line("")

	// Token breakdown
	line("## Token Usage")
	totalCache := r.TotalCacheWriteTokens + r.TotalCacheReadTokens
	cacheHit := 0.0
	if totalCache > 0 {
		cacheHit = float64(r.TotalCacheReadTokens) / float64(totalCache)
	}
	grand := r.TotalInputTokens + r.TotalCacheWriteTokens + r.TotalCacheReadTokens + r.TotalOutputTokens
	line("  Input (uncached):   %12s", humanize.Comma(r.TotalInputTokens))
	line("  Cache write:        %12s", humanize.Comma(r.TotalCacheWriteTokens))
	line("  Cache read:         %12s", humanize.Comma(r.TotalCacheReadTokens))
	line("  Output:             %12s", humanize.Comma(r.TotalOutputTokens))
	line("  Total:              %12s", humanize.Comma(grand))
	line("  Cache hit rate:     %10.1f%%", cacheHit*100)
	line("")

	// Cost breakdown
	line("## Cost Breakdown")
	inputCost := float64(r.TotalInputTokens) / 1_000_000 * rates.Input
	outputCost := float64(r.TotalOutputTokens) / 1_000_000 * rates.Output
	cacheWCost := float64(r.TotalCacheWriteTokens) / 1_000_000 * rates.CacheWrite
	cacheRCost := float64(r.TotalCacheReadTokens) / 1_000_000 * rates.CacheRead
	pct := func(part float64) float64 {
		if r.TotalCostUSD == 0 {
			return 0
		}
		return part / r.TotalCostUSD * 100
	}
	line("  Input:        $%8.2f  (%4.0f%%)", inputCost, pct(inputCost))
	line("  Output:       $%8.2f  (%4.0f%%)", outputCost, pct(outputCost))
	line("  Cache write:  $%8.2f  (%4.0f%%)", cacheWCost, pct(cacheWCost))
	line("  Cache read:   $%8.2f  (%4.0f%%)", cacheRCost, pct(cacheRCost))
	line("  TOTAL:        $%8.2f", r.TotalCostUSD)
	line("")

	// Per-session breakdown
	line("## Per-Session Breakdown")
	line("  %-12s %9s %10s %10s %7s %8s %6s",
		"Session ID", "API Calls", "In Tok", "Out Tok", "Cache%", "Cost", "Dur")
	line("  %s", strings.Repeat("-", 66))
	for _, s := range sessions {
		id := s.SessionID
		if len(id) > 12 {
			id = id[:12]
		}
		line("  %-12s %9d %10s %10s %5.0f%% $%7.2f %5.1fm",
			id, s.APICalls,
			humanize.Comma(s.TotalInputTokens()), humanize.Comma(s.OutputTokens),
			s.CacheHitRate()*100, SessionCost(s, rates), s.DurationMinutes)
	}
	line("")

	// Tool usage
	line("## Tool Usage (aggregate)")
	allTools := make(map[string]int)
	for _, s := range sessions {
		for tool, count := range s.ToolTypes {
			allTools[tool] += count
		}
	}
	line("  Total tool calls: %d", r.TotalToolCalls)
	type toolCount struct {
		name  string
		count int
	}
	sorted := make([]toolCount, 0, len(allTools))
	for name, count := range allTools {
		sorted = append(sorted, toolCount{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})
	for i, tc := range sorted {
		if i >= 15 {
			break
		}
		line("  %-30s %5d", tc.name, tc.count)
	}
	line("")

	// Efficiency metrics
	line("## Efficiency Metrics")
	if r.TasksCompleted > 0 {
		completed := float64(r.TasksCompleted)
		line("  Cost per task:        $%.2f", r.TotalCostUSD/completed)
		line("  API calls per task:   %.1f", float64(r.TotalAPICalls)/completed)
		line("  Output tok per task:  %s", humanize.Comma(int64(math.Round(float64(r.TotalOutputTokens)/completed))))
	}
	active := 0
	for _, s := range sessions {
		if s.APICalls > activeSessionAPICalls {
			active++
		}
	}
	if active > 0 {
		line("  Tasks per session:    %.1f (across %d active sessions)",
			float64(r.TasksCompleted)/float64(active), active)
	}
	line("")

	// Recommendations
	if len(r.Recommendations) > 0 {
		line("## Recommendations")
		for i, rec := range r.Recommendations {
			line("  %d. %s", i+1, rec)
		}
		line("")
	}

	line("%s", rule)
	return b.String()
}
