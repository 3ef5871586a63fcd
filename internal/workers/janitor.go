// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/store"
)

type purgeJanitor struct {
	verificationRepository store.VerificationRepository
	interval               time.Duration
	logger                 *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPurgeJanitor creates a worker that periodically deletes expired phone
// verification attempts. If interval is zero or negative it defaults to one
// hour. The worker is idle until Run is called.
func NewPurgeJanitor(verificationRepository store.VerificationRepository, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &purgeJanitor{
		verificationRepository: verificationRepository,
		interval:               interval,
		logger:                 logger,
	}
}

// Run implements Worker. It launches a background goroutine that purges
// expired attempts every interval. The goroutine exits when Stop is called.
func (j *purgeJanitor) Run() {
	j.Stop()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.purge(ctx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully exited.
// Safe to call when the janitor is not running.
func (j *purgeJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *purgeJanitor) purge(ctx context.Context) {
	purged, err := j.verificationRepository.PurgeExpired(ctx, time.Now())
	if err != nil {
		j.logger.Error().Err(err).Msg("purging expired verification attempts failed")
		return
	}
	if purged > 0 {
		j.logger.Info().Int64("purged", purged).Msg("expired verification attempts removed")
	}
}
