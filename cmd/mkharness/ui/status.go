package ui

import (
	"fmt"
	"math"
	"strings"

	"mkharness/internal/tasks"
)

const catWidth = 12

var priorityOrder = []string{"high", "medium", "low"}

var (
	priPadded = map[string]string{"high": "High    ", "medium": "Medium  ", "low": "Low     "}
	priPlain  = map[string]string{"high": "High", "medium": "Medium", "low": "Low"}
	priWords  = map[string]string{"high": "High  ", "medium": "Medium", "low": "Low   "}
	szPadded  = map[string]string{"S": "Small", "M": "Med  ", "L": "Large", "XL": "XL   "}
	szPlain   = map[string]string{"S": "Small", "M": "Med", "L": "Large", "XL": "XL"}
)

func priLabel(p string, padded bool) string {
	texts := priPlain
	if padded {
		texts = priPadded
	}
	text, ok := texts[p]
	if !ok {
		if padded {
			text = fmt.Sprintf("%-8.8s", p)
		} else {
			text = p
		}
	}
	return PriorityStyle(p).Render(text)
}

func szLabel(c string, padded bool) string {
	texts := szPlain
	if padded {
		texts = szPadded
	}
	text, ok := texts[c]
	if !ok {
		if padded {
			text = fmt.Sprintf("%-5.5s", c)
		} else {
			text = c
		}
	}
	return SizeStyle(c).Render(text)
}

func statusIcon(passes bool) string {
	if passes {
		return Done.Render("✓")
	}
	return Todo.Render("○")
}

// ProgressBar renders a done/total bar of the given width.
func ProgressBar(done, total, width int) string {
	if total == 0 {
		return Dim.Render(strings.Repeat("░", width))
	}
	filled := int(math.Round(float64(done) / float64(total) * float64(width)))
	var b strings.Builder
	for i := 0; i < filled; i++ {
		b.WriteString(Done.Render("█"))
	}
	for i := filled; i < width; i++ {
		b.WriteString(Dim.Render("░"))
	}
	return b.String()
}

// RenderStatus lays out the full status board for a terminal of the given
// width: header, overall bar, priority and category breakdowns, session
// estimate, task table, and the next pending task.
func RenderStatus(l tasks.List, termWidth int) string {
	var b strings.Builder

	total := len(l)
	done := l.Completed()
	todo := total - done
	tw := termWidth
	if tw > 140 {
		tw = 140
	}
	ruleW := tw - 2
	if ruleW > 90 {
		ruleW = 90
	}

	rule := Header.Render("  " + strings.Repeat("━", ruleW))
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(done) / float64(total) * 100))
	}
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString(Header.Render(fmt.Sprintf("  Mega Knights Harness  ·  %d/%d tasks  (%d%%)", done, total, pct)) + "\n")
	b.WriteString(rule + "\n")

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s/%d\n", ProgressBar(done, total, 40), Done.Render(fmt.Sprint(done)), total)

	// Breakdown by priority.
	b.WriteString("\n")
	b.WriteString(Sub.Render("  Priority Breakdown") + "\n")
	byPri := l.ByPriority()
	for _, p := range priorityOrder {
		tally := byPri[p]
		bar := ProgressBar(tally.Done, tally.Total(), 16)
		fmt.Fprintf(&b, "    %s  %s  %d/%d\n", PriorityStyle(p).Render(priWords[p]), bar, tally.Done, tally.Total())
	}

	// Breakdown by category, largest first.
	b.WriteString("\n")
	b.WriteString(Sub.Render("  Category Breakdown") + "\n")
	byCat := l.ByCategory()
	for _, c := range l.CategoriesBySize() {
		tally := byCat[c]
		bar := ProgressBar(tally.Done, tally.Total(), 16)
		fmt.Fprintf(&b, "    %-12s  %s  %d/%d\n", c, bar, tally.Done, tally.Total())
	}

	if todo > 0 {
		b.WriteString("\n")
		b.WriteString(Dim.Render(fmt.Sprintf("  Estimated remaining: ~%.1f sessions", l.EstimateSessions())) + "\n")
	}

	// Task table. Fixed columns: id 4, status 1, priority 8, size 5,
	// category 12; the title takes what is left.
	const fixed = 2 + 4 + 2 + 1 + 2 + 8 + 2 + 5 + 2 + catWidth + 2
	titleW := tw - fixed
	if titleW > 70 {
		titleW = 70
	}
	if titleW < 20 {
		titleW = 20
	}

	divW := tw - 4
	if divW > 90 {
		divW = 90
	}
	divider := Rule.Render("  " + strings.Repeat("─", divW))
	b.WriteString("\n")
	b.WriteString(divider + "\n")
	hdr := fmt.Sprintf("  %4s  %1s  %-8s  %-5s  %-*s  %-*s", "#", "", "Priority", "Size", catWidth, "Category", titleW, "Title")
	b.WriteString(Dim.Render(hdr) + "\n")
	b.WriteString(divider + "\n")

	for _, t := range l {
		cat := t.Category
		if cat == "" {
			cat = "other"
		}
		cat = tasks.Truncate(cat, catWidth)
		title := tasks.Truncate(t.Label(), titleW)
		id := fmt.Sprintf("#%3d", t.ID)
		row := fmt.Sprintf("%-*s", catWidth, cat)
		if t.Passes {
			id = Dim.Render(id)
			row = Dim.Render(row)
			title = Dim.Render(title)
		}
		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s  %s\n",
			id, statusIcon(t.Passes),
			priLabel(t.PriorityOrLow(), true), szLabel(t.ComplexityOrM(), true),
			row, title)
	}

	b.WriteString("\n")
	b.WriteString(divider + "\n")
	if todo == 0 {
		b.WriteString(Done.Render("  ✓ All tasks complete! Run ./harness.sh --init to find new work.") + "\n")
	} else if next, ok := l.NextPending(); ok {
		fmt.Fprintf(&b, "  Next: %s [%s / %s]  %s\n",
			Bold.Render(fmt.Sprintf("#%d", next.ID)),
			priLabel(next.PriorityOrLow(), false), szLabel(next.ComplexityOrM(), false),
			tasks.Truncate(next.Label(), 60))
	}
	b.WriteString("\n")
	return b.String()
}
