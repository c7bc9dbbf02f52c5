package tasks

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const fixture = `[
  {"id": 1, "priority": "high", "complexity": "L", "category": "entities", "title": "Spawn knights", "passes": true},
  {"id": 2, "priority": "high", "complexity": "M", "category": "entities", "description": "Enemy archer AI", "passes": false},
  {"id": 3, "priority": "medium", "complexity": "S", "category": "armor", "title": "Page tier recipes", "passes": false, "related_to": [4]},
  {"id": 4, "priority": "low", "category": "armor", "title": "Squire tier recipes", "passes": false},
  {"id": 5, "priority": "low", "complexity": "XL", "category": "bosses", "title": "Siege Lord fight", "passes": false}
]`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feature_list.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	l, err := Load(writeFixture(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l) != 5 {
		t.Fatalf("got %d tasks, want 5", len(l))
	}
	if l.Completed() != 1 {
		t.Errorf("Completed() = %d, want 1", l.Completed())
	}
	if got := l[1].Label(); got != "Enemy archer AI" {
		t.Errorf("Label fell back wrong: %q", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBreakdowns(t *testing.T) {
	l, err := Load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}

	byPri := l.ByPriority()
	if byPri["high"] != (Tally{Done: 1, Todo: 1}) {
		t.Errorf("high = %+v", byPri["high"])
	}
	if byPri["low"] != (Tally{Done: 0, Todo: 2}) {
		t.Errorf("low = %+v", byPri["low"])
	}

	byCat := l.ByCategory()
	if byCat["armor"].Total() != 2 {
		t.Errorf("armor total = %d, want 2", byCat["armor"].Total())
	}

	order := l.CategoriesBySize()
	if order[0] != "armor" && order[0] != "entities" {
		t.Errorf("unexpected leading category %q", order[0])
	}
	if order[len(order)-1] != "bosses" {
		t.Errorf("bosses should sort last, got %v", order)
	}
}

func TestEstimateSessions(t *testing.T) {
	l, err := Load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	// Pending: M(0.5) + S(0.3) + default-M(0.5) + XL(1.5) = 2.8
	if got := l.EstimateSessions(); math.Abs(got-2.8) > 1e-9 {
		t.Errorf("EstimateSessions() = %v, want 2.8", got)
	}
}

func TestNextPendingAndRelated(t *testing.T) {
	l, err := Load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	next, ok := l.NextPending()
	if !ok || next.ID != 2 {
		t.Errorf("NextPending() = %+v ok=%v, want id 2", next, ok)
	}
	if rel := l.Related(); len(rel) != 1 || rel[0].ID != 3 {
		t.Errorf("Related() = %+v", rel)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("one\ntwo", 20); got != "one two" {
		t.Errorf("Truncate flatten = %q", got)
	}
	if got := Truncate("abcdefgh", 5); got != "abcd…" {
		t.Errorf("Truncate clip = %q", got)
	}
}
