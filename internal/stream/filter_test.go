package stream

import (
	"strings"
	"testing"
)

const streamFixture = `{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Read","input":{"file_path":"/src/game/boss.go"}}]}}
{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Bash","input":{"command":"go test ./internal/texture/... -run TestSkins -count=1 -v 2>&1 | tail -20"}},{"type":"text","text":"Running the texture tests.\nSecond line should not appear."}]}}
garbage line
{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Task","input":{"description":"port armor painter"}}]}}
{"type":"result","cost_usd":1.234,"duration_ms":95000,"num_turns":12}
`

func TestFilter_Run(t *testing.T) {
	var out strings.Builder
	if err := New(&out).Run(strings.NewReader(streamFixture)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"[1]", "Read", "boss.go",
		"[2]", "Bash", "go test ./internal/texture/... -run TestSkins",
		"Running the texture tests.",
		"[3]", "Task", "port armor painter",
		"Done: 12 turns, $1.23, 95s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, got)
		}
	}

	if strings.Contains(got, "Second line") {
		t.Error("text snippets must keep only the first line")
	}
	// Bash commands are clipped at 50 characters.
	if strings.Contains(got, "tail -20") {
		t.Error("bash detail was not clipped")
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	var out strings.Builder
	if err := New(&out).Run(strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
