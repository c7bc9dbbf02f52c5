package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sessionFixture = `{"type":"user","timestamp":"2026-02-20T08:00:00Z","message":{"content":"start"}}
{"type":"assistant","timestamp":"2026-02-20T08:01:00Z","message":{"usage":{"input_tokens":100,"output_tokens":50,"cache_creation_input_tokens":2000,"cache_read_input_tokens":8000},"content":[{"type":"tool_use","name":"Read","input":{"file_path":"a.go"}},{"type":"text","text":"reading"}]}}
not json at all
{"type":"assistant","timestamp":"2026-02-20T08:30:00Z","message":{"usage":{"input_tokens":40,"output_tokens":10,"cache_creation_input_tokens":0,"cache_read_input_tokens":4000},"content":[{"type":"tool_use","name":"Edit"},{"type":"tool_use","name":"Read"}]}}
{"type":"result","timestamp":"2026-02-20T08:31:00Z"}
`

func writeSession(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSession(t *testing.T) {
	path := writeSession(t, "abc123-def.jsonl", sessionFixture)

	m, err := ParseSession(path)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}

	if m.SessionID != "abc123-def" {
		t.Errorf("SessionID = %q", m.SessionID)
	}
	if m.APICalls != 2 {
		t.Errorf("APICalls = %d, want 2", m.APICalls)
	}
	if m.InputTokens != 140 || m.OutputTokens != 60 {
		t.Errorf("tokens = %d/%d, want 140/60", m.InputTokens, m.OutputTokens)
	}
	if m.CacheWriteTokens != 2000 || m.CacheReadTokens != 12000 {
		t.Errorf("cache = %d/%d, want 2000/12000", m.CacheWriteTokens, m.CacheReadTokens)
	}
	if m.TotalInputTokens() != 14140 {
		t.Errorf("TotalInputTokens = %d, want 14140", m.TotalInputTokens())
	}
	if m.ToolCalls != 3 || m.ToolTypes["Read"] != 2 || m.ToolTypes["Edit"] != 1 {
		t.Errorf("tools = %d %v", m.ToolCalls, m.ToolTypes)
	}
	// 12000 cache reads out of 14000 cache tokens.
	if hit := m.CacheHitRate(); hit < 0.856 || hit > 0.858 {
		t.Errorf("CacheHitRate = %v", hit)
	}
	// 08:00 to 08:31.
	if m.DurationMinutes != 31.0 {
		t.Errorf("DurationMinutes = %v, want 31.0", m.DurationMinutes)
	}
}

func TestParseSession_EmptyAndMalformed(t *testing.T) {
	path := writeSession(t, "junk.jsonl", "\n{broken\n{\"type\":\"summary\"}\n")
	m, err := ParseSession(path)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}
	if m.APICalls != 0 || m.ToolCalls != 0 {
		t.Errorf("expected empty metrics, got %+v", m)
	}
}

func TestDiscovery(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string, mtime time.Time) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	day1 := time.Date(2026, 2, 20, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 2, 21, 9, 0, 0, 0, time.Local)
	write("aaa-1.jsonl", "{}\n", day1)
	write("aaa-2.jsonl", "{}\n", day2)
	write("bbb-1.jsonl", "", day2) // empty files never count

	got, err := FindByDate(dir, day1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "aaa-1.jsonl" {
		t.Errorf("FindByDate = %v", got)
	}

	got, err = FindByIDs(dir, []string{"aaa"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("FindByIDs = %v", got)
	}

	latest, ok, err := LatestDate(dir)
	if err != nil || !ok {
		t.Fatalf("LatestDate err=%v ok=%v", err, ok)
	}
	if latest.Day() != 21 {
		t.Errorf("LatestDate = %v", latest)
	}
}

func TestLatestDate_NoSessions(t *testing.T) {
	_, ok, err := LatestDate(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected ok=false for missing dir")
	}
}

func TestParseProgressLog(t *testing.T) {
	log := `=== Session 2026-02-20 08:29 ===
Task #3: page armor recipes
Task #7: squire token drops
=== Session 2026-02-20 11:02 ===
Task #9: boss arena
noise line
`
	got, err := ParseProgressLog(strings.NewReader(log))
	if err != nil {
		t.Fatal(err)
	}
	first := got["2026-02-20 08:29"]
	if len(first) != 2 || first[0] != 3 || first[1] != 7 {
		t.Errorf("first session tasks = %v", first)
	}
	if second := got["2026-02-20 11:02"]; len(second) != 1 || second[0] != 9 {
		t.Errorf("second session tasks = %v", second)
	}
}
