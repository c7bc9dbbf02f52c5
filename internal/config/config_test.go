package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("/work/mk")

	assert.Equal(t, filepath.Join("/work/mk", ".claude"), cfg.HarnessPath())
	assert.Equal(t, filepath.Join("/work/mk", ".claude", "feature_list.json"), cfg.TaskListPath())
	assert.Equal(t, filepath.Join("/work/mk", ".claude", "harness_runs"), cfg.RunsPath())
	assert.Equal(t, filepath.Join("/work/mk", "MegaKnights_RP", "textures"), cfg.TexturesPath())
	assert.Equal(t, "opus", cfg.Model)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, ".claude"), 0o755))
	overlay := "model: sonnet\ntextures_root: assets/textures\n"
	require.NoError(t, os.WriteFile(filepath.Join(ws, ".claude", "harness.yaml"), []byte(overlay), 0o644))

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, "sonnet", cfg.Model)
	assert.Equal(t, filepath.Join(ws, "assets", "textures"), cfg.TexturesPath())
	// Untouched fields keep their defaults.
	assert.Equal(t, "feature_list.json", cfg.TaskList)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MK_SESSIONS_DIR", "/srv/sessions")
	t.Setenv("MK_MODEL", "haiku")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "haiku", cfg.Model)

	dir, err := cfg.SessionsDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/sessions", dir)
}

func TestSessionsDir_MangledPath(t *testing.T) {
	ws := t.TempDir()
	cfg := Default(ws)

	dir, err := cfg.SessionsDir()
	require.NoError(t, err)

	abs, err := filepath.Abs(ws)
	require.NoError(t, err)
	wantBase := "-" + strings.ReplaceAll(abs, string(filepath.Separator), "-")
	assert.Equal(t, wantBase, filepath.Base(dir))
	assert.Contains(t, dir, filepath.Join(".claude", "projects"))
}
