package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mkharness/internal/tasks"
)

func sampleList() tasks.List {
	return tasks.List{
		{ID: 1, Priority: "high", Complexity: "L", Category: "combat", Title: "Boss siege lord phase two", Passes: true},
		{ID: 2, Priority: "high", Complexity: "M", Category: "combat", Title: "Enemy archer volley arcs"},
		{ID: 3, Priority: "medium", Complexity: "S", Category: "textures", Title: "Champion token star symbol"},
		{ID: 4, Priority: "low", Complexity: "XL", Category: "worldgen", Title: "Castle courtyard layout\nwith moat"},
	}
}

func TestRenderStatus(t *testing.T) {
	out := RenderStatus(sampleList(), 120)

	assert.Contains(t, out, "Mega Knights Harness  ·  1/4 tasks  (25%)")
	assert.Contains(t, out, "Priority Breakdown")
	assert.Contains(t, out, "Category Breakdown")
	// Categories come largest first, ties alphabetical.
	comIdx := strings.Index(out, "combat")
	texIdx := strings.Index(out, "textures")
	assert.True(t, comIdx >= 0 && texIdx > comIdx, "combat lists before textures")
	// S=0.3 + XL=1.5 + M=0.5 pending.
	assert.Contains(t, out, "Estimated remaining: ~2.3 sessions")
	// Newlines in titles flatten in the table.
	assert.Contains(t, out, "Castle courtyard layout with moat")
	assert.NotContains(t, out, "layout\nwith")
	// First pending task is promoted in the footer.
	assert.Contains(t, out, "Next:")
	assert.Contains(t, out, "Enemy archer volley arcs")
}

func TestRenderStatus_AllDone(t *testing.T) {
	l := tasks.List{
		{ID: 1, Priority: "high", Complexity: "M", Category: "combat", Title: "Done already", Passes: true},
	}
	out := RenderStatus(l, 120)
	assert.Contains(t, out, "All tasks complete!")
	assert.NotContains(t, out, "Estimated remaining")
	assert.NotContains(t, out, "Next:")
}

func TestRenderStatus_NarrowTerminal(t *testing.T) {
	l := tasks.List{
		{ID: 1, Priority: "high", Complexity: "M", Category: "combat",
			Title: strings.Repeat("long title segment ", 10)},
	}
	out := RenderStatus(l, 40)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 90, "line overflows a narrow layout: %q", line)
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 20, strings.Count(ProgressBar(0, 0, 20), "░"))
	half := ProgressBar(1, 2, 20)
	assert.Equal(t, 10, strings.Count(half, "█"))
	assert.Equal(t, 10, strings.Count(half, "░"))
	assert.Equal(t, 16, strings.Count(ProgressBar(5, 5, 16), "█"))
}
