package transcript

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// FindByDate returns the non-empty session files in dir modified on the
// given calendar day, sorted by modification time.
func FindByDate(dir string, day time.Time) ([]string, error) {
	entries, err := listSessions(dir)
	if err != nil {
		return nil, err
	}
	var out []sessionFile
	y, m, d := day.Date()
	for _, e := range entries {
		ey, em, ed := e.mtime.Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return paths(out), nil
}

// FindByIDs returns session files whose names start with any of the given
// full or partial session IDs, sorted by modification time.
func FindByIDs(dir string, ids []string) ([]string, error) {
	var out []sessionFile
	for _, id := range ids {
		matches, err := filepath.Glob(filepath.Join(dir, id+"*.jsonl"))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.Size() == 0 {
				continue
			}
			out = append(out, sessionFile{path: m, mtime: info.ModTime()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].mtime.Before(out[j].mtime) })
	return paths(out), nil
}

// LatestDate returns the most recent calendar day having non-empty session
// files. ok is false when the directory holds none.
func LatestDate(dir string) (time.Time, bool, error) {
	entries, err := listSessions(dir)
	if err != nil {
		return time.Time{}, false, err
	}
	var latest time.Time
	for _, e := range entries {
		y, m, d := e.mtime.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, e.mtime.Location())
		if day.After(latest) {
			latest = day
		}
	}
	return latest, !latest.IsZero(), nil
}

type sessionFile struct {
	path  string
	mtime time.Time
}

func listSessions(dir string) ([]sessionFile, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return nil, err
	}
	var out []sessionFile
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.Size() == 0 {
			continue
		}
		out = append(out, sessionFile{path: m, mtime: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].mtime.Before(out[j].mtime) })
	return out, nil
}

func paths(files []sessionFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out
}

var (
	sessionHeaderRe = regexp.MustCompile(`^=== Session (\S+ \S+)`)
	taskLineRe      = regexp.MustCompile(`^Task #(\d+):`)
)

// ParseProgressLog maps session headers in the progress log to the task IDs
// completed under them. Lines look like:
//
//	=== Session 2026-02-20 08:29 ===
//	Task #12: implemented enemy archer AI
func ParseProgressLog(r io.Reader) (map[string][]int, error) {
	out := make(map[string][]int)
	var current string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if m := sessionHeaderRe.FindStringSubmatch(line); m != nil {
			current = m[1]
			out[current] = []int{}
			continue
		}
		if m := taskLineRe.FindStringSubmatch(line); m != nil && current != "" {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			out[current] = append(out[current], id)
		}
	}
	return out, sc.Err()
}
