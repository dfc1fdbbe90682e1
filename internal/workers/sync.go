// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/service"
)

// messageSyncWorker pulls groups and conversations from the chain on a
// ticker so the cache stays close to the on-chain state even when the user
// is idle.
type messageSyncWorker struct {
	messaging service.MessagingService
	interval  time.Duration
	log       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMessageSyncWorker creates a worker that calls messaging.SyncAll every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// worker is idle until Start is called.
func NewMessageSyncWorker(messaging service.MessagingService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	return &messageSyncWorker{messaging: messaging, interval: interval, log: log}
}

// Start implements [Worker]. It stops any previously running job, then
// launches a background goroutine that syncs every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (w *messageSyncWorker) Start(ctx context.Context) {
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
				if err := w.messaging.SyncAll(jobCtx); err != nil {
					w.log.Warn().Err(err).Msg("background message sync failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// worker is not running (no-op in that case).
func (w *messageSyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
