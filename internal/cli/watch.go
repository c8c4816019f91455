package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-analyze a file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runWatch(ctx, args[0])
		},
	}
	cmd.Flags().DurationVar(&a.flags.Debounce, "debounce", a.flags.Debounce, "wait this long after the last change before re-analyzing")
	return cmd
}

// runWatch analyzes path once, then again after every burst of changes
// until ctx is done. The parent directory is watched because most editors
// save by writing a new file and renaming it over the old one.
func (a *App) runWatch(ctx context.Context, path string) error {
	format, err := a.format()
	if err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	p := a.resolveProfile()
	an := a.newAnalyzer(p)
	analyzeOnce := func() error {
		d, err := a.readDocument(path)
		if err != nil {
			return err
		}
		return render(a.out, format, p, []result{newResult(d.Source, an.Analyze(d.Text))})
	}
	if err := analyzeOnce(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	a.log.Info("watching", "file", target, "debounce", a.flags.Debounce)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(a.flags.Debounce)
			} else {
				timer.Reset(a.flags.Debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watcher error", "error", err)
		case <-fire:
			fire = nil
			if _, err := fmt.Fprintln(a.out); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if err := analyzeOnce(); err != nil {
				a.log.Warn("re-analysis failed", "file", target, "error", err)
			}
		}
	}
}
