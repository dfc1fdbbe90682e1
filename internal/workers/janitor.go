// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/service"
)

// signatureJanitor periodically purges expired decryption credentials from
// the signature cache. Expired credentials are harmless but would otherwise
// accumulate forever on long-lived installs.
type signatureJanitor struct {
	decryption service.DecryptionService
	interval   time.Duration
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSignatureJanitor creates a worker that calls decryption.PurgeExpired
// every interval. If interval is zero or negative it defaults to 10 minutes.
func NewSignatureJanitor(decryption service.DecryptionService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}

	return &signatureJanitor{decryption: decryption, interval: interval, log: log}
}

// Start implements [Worker].
func (w *signatureJanitor) Start(ctx context.Context) {
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
				if purged := w.decryption.PurgeExpired(jobCtx); purged > 0 {
					w.log.Debug().Int("purged", purged).Msg("signature janitor pass complete")
				}
			}
		}
	}()
}

// Stop implements [Worker].
func (w *signatureJanitor) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
