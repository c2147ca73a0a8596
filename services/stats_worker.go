package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// StatsWorker runs statistics recalculations off the request path. Enqueue
// never blocks; when the queue is full the job is dropped, which is safe
// because the recomputation is a full derive from current state and the next
// answer save re-enqueues it. Failures are logged, not surfaced to callers.
type StatsWorker struct {
	service *StatsService
	log     *logrus.Logger
	queue   chan uint
	wg      sync.WaitGroup
}

func NewStatsWorker(service *StatsService, log *logrus.Logger) *StatsWorker {
	w := &StatsWorker{
		service: service,
		log:     log,
		queue:   make(chan uint, 64),
	}
	w.wg.Add(1)
	return w
}

// Run processes the queue until Stop closes it. Start it on its own
// goroutine.
func (w *StatsWorker) Run() {
	defer w.wg.Done()

	for userID := range w.queue {
		if _, err := w.service.Recalculate(context.Background(), userID); err != nil {
			w.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err,
			}).Error("statistics recalculation failed")
		}
	}
}

func (w *StatsWorker) Enqueue(userID uint) {
	select {
	case w.queue <- userID:
	default:
		w.log.WithField("user_id", userID).Warn("statistics queue full, dropping recalculation")
	}
}

// Stop drains pending jobs and waits for the worker to finish.
func (w *StatsWorker) Stop() {
	close(w.queue)
	w.wg.Wait()
}
