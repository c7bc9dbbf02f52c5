// Package tasks models the read-only harness task list (feature_list.json).
package tasks

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Task is a single harness work item.
type Task struct {
	ID          int      `json:"id"`
	Priority    string   `json:"priority"`   // high, medium, low
	Complexity  string   `json:"complexity"` // S, M, L, XL
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Passes      bool     `json:"passes"`
	RelatedTo   []int    `json:"related_to,omitempty"`
	TargetFiles []string `json:"target_files,omitempty"`
}

// Label returns the display text for the task: title, falling back to the
// description.
func (t Task) Label() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Description
}

// PriorityOrLow returns the priority, defaulting to low when unset.
func (t Task) PriorityOrLow() string {
	if t.Priority == "" {
		return "low"
	}
	return t.Priority
}

// ComplexityOrM returns the complexity, defaulting to M when unset.
func (t Task) ComplexityOrM() string {
	if t.Complexity == "" {
		return "M"
	}
	return t.Complexity
}

// List is the full ordered task list.
type List []Task

// Load reads and parses a task list file.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no task list found at %s", path)
		}
		return nil, err
	}
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return l, nil
}

// Completed counts tasks with the completion flag set.
func (l List) Completed() int {
	n := 0
	for _, t := range l {
		if t.Passes {
			n++
		}
	}
	return n
}

// Remaining returns the pending tasks in list order.
func (l List) Remaining() []Task {
	var out []Task
	for _, t := range l {
		if !t.Passes {
			out = append(out, t)
		}
	}
	return out
}

// NextPending returns the first pending task.
func (l List) NextPending() (Task, bool) {
	for _, t := range l {
		if !t.Passes {
			return t, true
		}
	}
	return Task{}, false
}

// Tally is a done/todo pair for one breakdown bucket.
type Tally struct {
	Done int
	Todo int
}

// Total returns done + todo.
func (t Tally) Total() int { return t.Done + t.Todo }

// ByPriority tallies tasks per priority (high, medium, low).
func (l List) ByPriority() map[string]Tally {
	out := map[string]Tally{"high": {}, "medium": {}, "low": {}}
	for _, t := range l {
		p := t.PriorityOrLow()
		tally, ok := out[p]
		if !ok {
			continue
		}
		if t.Passes {
			tally.Done++
		} else {
			tally.Todo++
		}
		out[p] = tally
	}
	return out
}

// ByCategory tallies tasks per category, defaulting to "other".
func (l List) ByCategory() map[string]Tally {
	out := make(map[string]Tally)
	for _, t := range l {
		c := t.Category
		if c == "" {
			c = "other"
		}
		tally := out[c]
		if t.Passes {
			tally.Done++
		} else {
			tally.Todo++
		}
		out[c] = tally
	}
	return out
}

// CategoriesBySize returns category names ordered by descending task count,
// ties broken alphabetically so output stays stable.
func (l List) CategoriesBySize() []string {
	byCat := l.ByCategory()
	names := make([]string, 0, len(byCat))
	for c := range byCat {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		ti, tj := byCat[names[i]].Total(), byCat[names[j]].Total()
		if ti != tj {
			return ti > tj
		}
		return names[i] < names[j]
	})
	return names
}

// ComplexityCounts tallies tasks per complexity class.
func (l List) ComplexityCounts() map[string]int {
	out := map[string]int{"S": 0, "M": 0, "L": 0}
	for _, t := range l {
		out[t.ComplexityOrM()]++
	}
	return out
}

// Session-cost weights per complexity class.
var sessionWeights = map[string]float64{"S": 0.3, "M": 0.5, "L": 1.0, "XL": 1.5}

// EstimateSessions estimates how many harness sessions the pending tasks
// will take, weighting by complexity.
func (l List) EstimateSessions() float64 {
	est := 0.0
	for _, t := range l {
		if t.Passes {
			continue
		}
		w, ok := sessionWeights[t.ComplexityOrM()]
		if !ok {
			w = 0.5
		}
		est += w
	}
	return est
}

// Related returns the tasks carrying cross-references.
func (l List) Related() []Task {
	var out []Task
	for _, t := range l {
		if len(t.RelatedTo) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Truncate flattens newlines and clips s to n characters, ellipsizing when
// it was longer.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
