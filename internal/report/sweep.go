package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Ragavendra192/barani-report-system/internal/logger"
)

// SweepExports removes spreadsheets in dir last modified before now-maxAge.
// Exports are deleted after download, so anything old was left behind by an
// interrupted request. A missing dir is not an error.
func SweepExports(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read export dir: %w", err)
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xlsx") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// Janitor runs SweepExports on a cron schedule.
type Janitor struct {
	cron     *cron.Cron
	dir      string
	schedule string
	maxAge   time.Duration
}

// NewJanitor creates a janitor for dir. schedule uses the robfig/cron syntax,
// for example "@every 15m".
func NewJanitor(dir, schedule string, maxAge time.Duration) *Janitor {
	return &Janitor{
		cron:     cron.New(),
		dir:      dir,
		schedule: schedule,
		maxAge:   maxAge,
	}
}

// Start registers the sweep and starts the scheduler.
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.sweep); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", j.schedule, err)
	}
	j.cron.Start()
	logger.Info("Export janitor started", "dir", j.dir, "schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) sweep() {
	n, err := SweepExports(j.dir, j.maxAge, time.Now())
	if err != nil {
		logger.Warn("Export sweep failed", "dir", j.dir, "error", err)
		return
	}
	if n > 0 {
		logger.Info("Removed stale exports", "dir", j.dir, "count", n)
	}
}
