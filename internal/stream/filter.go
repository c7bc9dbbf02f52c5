// Package stream filters stream-json harness output into concise progress
// lines: one line per tool call, text snippet, or final result.
package stream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle  = lipgloss.NewStyle().Faint(true)
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Filter consumes stream-json lines and writes progress lines to w.
type Filter struct {
	w         io.Writer
	toolCount int
}

// New returns a filter writing to w (normally stderr, so the filtered
// stream stays pipeable).
func New(w io.Writer) *Filter {
	return &Filter{w: w}
}

type streamEvent struct {
	Type       string  `json:"type"`
	Message    message `json:"message"`
	CostUSD    float64 `json:"cost_usd"`
	DurationMS float64 `json:"duration_ms"`
	NumTurns   int     `json:"num_turns"`
}

type message struct {
	Content []block `json:"content"`
}

type block struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Text  string          `json:"text"`
	Input json.RawMessage `json:"input"`
}

type toolInput struct {
	FilePath    string `json:"file_path"`
	Pattern     string `json:"pattern"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// Run reads JSONL from r until EOF. Malformed lines are skipped.
func (f *Filter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev streamEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		switch ev.Type {
		case "assistant":
			f.assistant(ev.Message)
		case "result":
			f.result(ev)
		}
	}
	return sc.Err()
}

func (f *Filter) assistant(m message) {
	for _, b := range m.Content {
		switch b.Type {
		case "tool_use":
			f.toolCount++
			name := b.Name
			if name == "" {
				name = "?"
			}
			counter := dimStyle.Render(fmt.Sprintf("[%d]", f.toolCount))
			if detail := toolDetail(name, b.Input); detail != "" {
				fmt.Fprintf(f.w, "  %s %s %s\n", counter, name, dimStyle.Render(detail))
			} else {
				fmt.Fprintf(f.w, "  %s %s\n", counter, name)
			}
		case "text":
			text := strings.TrimSpace(b.Text)
			if text == "" {
				continue
			}
			first := strings.SplitN(text, "\n", 2)[0]
			if len(first) > 100 {
				first = first[:100]
			}
			fmt.Fprintf(f.w, "  %s\n", textStyle.Render(first))
		}
	}
}

// toolDetail builds a short description based on the tool type.
func toolDetail(name string, raw json.RawMessage) string {
	var in toolInput
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &in); err != nil {
			return ""
		}
	}
	switch name {
	case "Read", "Edit", "Write":
		if in.FilePath != "" {
			return filepath.Base(in.FilePath)
		}
	case "Glob":
		return in.Pattern
	case "Grep":
		return clip(in.Pattern, 40)
	case "Bash":
		return clip(in.Command, 50)
	case "Task":
		return in.Description
	}
	return ""
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (f *Filter) result(ev streamEvent) {
	fmt.Fprintf(f.w, "  %s\n", doneStyle.Render(fmt.Sprintf(
		"Done: %d turns, $%.2f, %.0fs", ev.NumTurns, ev.CostUSD, ev.DurationMS/1000)))
}
