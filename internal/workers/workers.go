// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg for app. onRefresh receives
// the result of every periodic fetch and may be nil.
func NewWorkers(cfg config.Workers, app service.NotesApp, onRefresh func(error), logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, NewRefreshWorker(app, cfg.RefreshInterval, onRefresh, logger))
	} else {
		logger.Debug().Msg("notes refresh worker disabled")
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
