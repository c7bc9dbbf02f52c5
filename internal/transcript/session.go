// Package transcript parses harness session transcripts: JSONL files where
// each line is one event. Parsing is best-effort; malformed lines are
// skipped rather than failing the whole file.
package transcript

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionMetrics aggregates token and tool usage for one session file.
type SessionMetrics struct {
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	FileSizeKB float64   `json:"file_size_kb"`

	APICalls         int   `json:"api_calls"`
	InputTokens      int64 `json:"input_tokens"`
	OutputTokens     int64 `json:"output_tokens"`
	CacheWriteTokens int64 `json:"cache_write_tokens"`
	CacheReadTokens  int64 `json:"cache_read_tokens"`

	ToolCalls int            `json:"tool_calls"`
	ToolTypes map[string]int `json:"tool_types"`

	DurationMinutes float64 `json:"duration_minutes"`
}

// TotalInputTokens is the full input side: uncached plus both cache classes.
func (m *SessionMetrics) TotalInputTokens() int64 {
	return m.InputTokens + m.CacheWriteTokens + m.CacheReadTokens
}

// CacheHitRate is the fraction of cache traffic served from cache reads.
func (m *SessionMetrics) CacheHitRate() float64 {
	total := m.CacheWriteTokens + m.CacheReadTokens
	if total == 0 {
		return 0
	}
	return float64(m.CacheReadTokens) / float64(total)
}

// Wire shapes for the transcript events we care about. Everything else on
// a line is ignored.
type event struct {
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"`
	Message   *message `json:"message"`
}

type message struct {
	Usage   *usage            `json:"usage"`
	Content []json.RawMessage `json:"content"`
}

type usage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}

type contentBlock struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Transcript lines can be very large (tool results embed file contents).
const maxLineBytes = 16 * 1024 * 1024

// ParseSession reads one session JSONL file and aggregates its metrics.
func ParseSession(path string) (*SessionMetrics, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	m := &SessionMetrics{
		SessionID:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Timestamp:  info.ModTime(),
		FileSizeKB: math.Round(float64(info.Size())/1024*10) / 10,
		ToolTypes:  make(map[string]int),
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var firstTS, lastTS string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}

		if ev.Timestamp != "" {
			if firstTS == "" {
				firstTS = ev.Timestamp
			}
			lastTS = ev.Timestamp
		}

		if ev.Type != "assistant" || ev.Message == nil {
			continue
		}

		if u := ev.Message.Usage; u != nil {
			m.APICalls++
			m.InputTokens += u.InputTokens
			m.OutputTokens += u.OutputTokens
			m.CacheWriteTokens += u.CacheCreationInputTokens
			m.CacheReadTokens += u.CacheReadInputTokens
		}

		for _, raw := range ev.Message.Content {
			var block contentBlock
			if err := json.Unmarshal(raw, &block); err != nil {
				continue
			}
			if block.Type != "tool_use" {
				continue
			}
			m.ToolCalls++
			name := block.Name
			if name == "" {
				name = "unknown"
			}
			m.ToolTypes[name]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if firstTS != "" && lastTS != "" {
		t1, err1 := time.Parse(time.RFC3339, firstTS)
		t2, err2 := time.Parse(time.RFC3339, lastTS)
		if err1 == nil && err2 == nil {
			m.DurationMinutes = math.Round(t2.Sub(t1).Minutes()*10) / 10
		}
	}

	return m, nil
}
