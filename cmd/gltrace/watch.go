package main

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/polyfloyd/gltrace/renderer"
)

// Editors may write a file in several steps. Changes within this window are
// folded into one reload.
const watchSettleTime = 20 * time.Millisecond

type environmentSetter interface {
	SetEnvironment(renderer.Environment)
}

// watchEnvironment loads an environment with newFn and hands it to the
// engine. It then waits for one of the files reported by newFn to change and
// starts over, until ctx is done.
func watchEnvironment(ctx context.Context, logger log.Logger, engine environmentSetter, newFn func() (renderer.Environment, []string, error)) {
	for ctx.Err() == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			level.Error(logger).Log("msg", "could not watch sources", "err", err)
			return
		}

		env, files, err := newFn()
		for _, f := range files {
			if err := watcher.Add(f); err != nil {
				level.Warn(logger).Log("msg", "could not watch file", "file", f, "err", err)
			}
		}
		if err != nil {
			level.Error(logger).Log("msg", "could not load environment", "err", err)
		} else {
			level.Debug(logger).Log("msg", "loaded environment", "files", len(files))
			engine.SetEnvironment(env)
		}

		waitForChange(ctx, logger, watcher)
		watcher.Close()
	}
}

func waitForChange(ctx context.Context, logger log.Logger, watcher *fsnotify.Watcher) {
	select {
	case ev := <-watcher.Events:
		level.Debug(logger).Log("msg", "source changed", "file", ev.Name, "op", ev.Op)
	case err := <-watcher.Errors:
		level.Warn(logger).Log("msg", "watch error", "err", err)
		return
	case <-ctx.Done():
		return
	}

	t := time.NewTimer(watchSettleTime)
	defer t.Stop()
	for {
		select {
		case <-watcher.Events:
		case <-t.C:
			return
		case <-ctx.Done():
			return
		}
	}
}
