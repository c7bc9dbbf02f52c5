package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"mkharness/cmd/mkharness/ui"
	"mkharness/internal/tasks"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Render the harness task board",
	Long: `Prints a colored progress board for the task list: overall completion,
priority and category breakdowns, a remaining-session estimate, and the
full task table. With --watch the board redraws whenever the task list
changes on disk.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Redraw when the task list changes")
}

func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 120
}

func printStatus() error {
	list, err := tasks.Load(cfg.TaskListPath())
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderStatus(list, termWidth()))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := printStatus(); err != nil {
		return err
	}
	if !statusWatch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()
	// Watch the directory: editors replace the file, which would orphan a
	// file-level watch.
	if err := watcher.Add(cfg.HarnessPath()); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.HarnessPath(), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := filepath.Base(cfg.TaskListPath())
	// Writers often emit bursts of events; coalesce them.
	var redraw <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			redraw = time.After(200 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-redraw:
			redraw = nil
			fmt.Print("\033[2J\033[H")
			if err := printStatus(); err != nil {
				logger.Warn("redraw failed", zap.Error(err))
			}
		}
	}
}
