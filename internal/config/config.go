// Package config holds the paths and settings shared by the harness tools.
// Settings come from built-in defaults, an optional harness.yaml overlay in
// the harness directory, and finally MK_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes where the harness artifacts live relative to a workspace.
type Config struct {
	// Workspace is the project root. Not serialized; set at load time.
	Workspace string `yaml:"-"`

	// HarnessDir is the directory holding the task list, progress log and
	// saved run reports, relative to the workspace.
	HarnessDir string `yaml:"harness_dir"`

	// TaskList is the task list filename inside HarnessDir.
	TaskList string `yaml:"task_list"`

	// ProgressLog is the session progress log filename inside HarnessDir.
	ProgressLog string `yaml:"progress_log"`

	// RunsDir is the saved-report directory name inside HarnessDir.
	RunsDir string `yaml:"runs_dir"`

	// SessionsRoot overrides the derived transcript directory when set.
	SessionsRoot string `yaml:"sessions_root"`

	// Model is the default pricing model for cost estimation.
	Model string `yaml:"model"`

	// TexturesRoot is the resource-pack texture root, relative to the
	// workspace, that the texture generator writes into.
	TexturesRoot string `yaml:"textures_root"`
}

// Default returns the standard configuration for a workspace.
func Default(workspace string) *Config {
	return &Config{
		Workspace:    workspace,
		HarnessDir:   ".claude",
		TaskList:     "feature_list.json",
		ProgressLog:  "progress.txt",
		RunsDir:      "harness_runs",
		Model:        "opus",
		TexturesRoot: filepath.Join("MegaKnights_RP", "textures"),
	}
}

// Load builds the effective configuration for a workspace: defaults, then
// the harness.yaml overlay if present, then environment overrides.
func Load(workspace string) (*Config, error) {
	cfg := Default(workspace)

	overlay := filepath.Join(cfg.HarnessPath(), "harness.yaml")
	data, err := os.ReadFile(overlay)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", overlay, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies MK_* environment variables on top of the
// loaded configuration.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MK_SESSIONS_DIR"); v != "" {
		c.SessionsRoot = v
	}
	if v := os.Getenv("MK_MODEL"); v != "" {
		c.Model = v
	}
}

// HarnessPath returns the absolute harness directory.
func (c *Config) HarnessPath() string {
	return filepath.Join(c.Workspace, c.HarnessDir)
}

// TaskListPath returns the absolute task list path.
func (c *Config) TaskListPath() string {
	return filepath.Join(c.HarnessPath(), c.TaskList)
}

// ProgressLogPath returns the absolute progress log path.
func (c *Config) ProgressLogPath() string {
	return filepath.Join(c.HarnessPath(), c.ProgressLog)
}

// RunsPath returns the absolute saved-report directory.
func (c *Config) RunsPath() string {
	return filepath.Join(c.HarnessPath(), c.RunsDir)
}

// TexturesPath returns the absolute texture output root.
func (c *Config) TexturesPath() string {
	if filepath.IsAbs(c.TexturesRoot) {
		return c.TexturesRoot
	}
	return filepath.Join(c.Workspace, c.TexturesRoot)
}

// SessionsDir returns the transcript directory for this workspace. When no
// override is configured it derives the Claude Code project directory:
// sessions live under ~/.claude/projects/<mangled>, where the mangled name
// prepends "-" to the workspace path and replaces every "/" with "-".
func (c *Config) SessionsDir() (string, error) {
	if c.SessionsRoot != "" {
		return c.SessionsRoot, nil
	}

	abs, err := filepath.Abs(c.Workspace)
	if err != nil {
		return "", err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	mangled := "-" + strings.ReplaceAll(abs, string(filepath.Separator), "-")
	return filepath.Join(home, ".claude", "projects", mangled), nil
}
