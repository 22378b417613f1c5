// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
)

// refreshWorker re-fetches the note list on a ticker so signed image URLs
// never outlive their expiry in an open view.
type refreshWorker struct {
	app       service.NotesApp
	interval  time.Duration
	onRefresh func(error)

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a worker calling app.FetchNotes every interval.
// A non-positive interval makes Run a no-op.
func NewRefreshWorker(app service.NotesApp, interval time.Duration, onRefresh func(error), logger *logger.Logger) Worker {
	return &refreshWorker{
		app:       app,
		interval:  interval,
		onRefresh: onRefresh,
		logger:    logger,
	}
}

// Run implements [Worker]. A running worker is restarted.
func (w *refreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()

	w.logger.Debug().Dur("interval", w.interval).Msg("notes refresh worker started")
}

func (w *refreshWorker) refresh(ctx context.Context) {
	err := w.app.FetchNotes(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		w.logger.Warn().Err(err).Msg("periodic notes refresh failed")
	}

	if w.onRefresh != nil {
		w.onRefresh(err)
	}
}

// Stop implements [Worker].
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
