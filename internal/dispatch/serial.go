// package dispatch provides the single cooperative dispatcher: all
// state-mutating work in the system runs as tasks on one goroutine.
package dispatch

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
)

const defaultQueueSize = 512

var _ primary.TaskQueue = (*Serial)(nil)

// Serial executes enqueued tasks one at a time in FIFO order. A task that
// needs to wait on IO must not block; it spawns the wait elsewhere and
// enqueues a continuation instead.
type Serial struct {
	tasks  chan func()
	stopCh chan struct{}
	doneCh chan struct{}
	logger primary.Logger
}

// SerialOption configures a Serial queue
type SerialOption func(*Serial)

// WithQueueSize sets the task channel buffer size
func WithQueueSize(size int) SerialOption {
	return func(s *Serial) {
		s.tasks = make(chan func(), size)
	}
}

// NewSerial creates a new serial task queue
func NewSerial(logger primary.Logger, options ...SerialOption) *Serial {
	s := &Serial{
		tasks:  make(chan func(), defaultQueueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		logger: logger,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Start launches the dispatch loop
func (s *Serial) Start() {
	go s.loop()
}

// Stop stops accepting tasks and waits for the loop to drain, bounded by
// ctx.
func (s *Serial) Stop(ctx context.Context) {
	close(s.stopCh)
	select {
	case <-s.doneCh:
	case <-ctx.Done():
		s.logger.Warn("Dispatcher stopped before draining", "error", ctx.Err())
	}
}

// Enqueue submits a task for serial execution. It blocks when the queue is
// full, applying backpressure to event producers, and drops the task after
// Stop.
func (s *Serial) Enqueue(task func()) {
	select {
	case <-s.stopCh:
	case s.tasks <- task:
	}
}

func (s *Serial) loop() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.stopCh:
			// drain what is already queued
			for {
				select {
				case task := <-s.tasks:
					s.run(task)
				default:
					return
				}
			}
		case task := <-s.tasks:
			s.run(task)
		}
	}
}

// run executes one task, containing panics so a bad handler cannot kill
// the dispatcher.
func (s *Serial) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Task panicked", "panic", r)
		}
	}()
	task()
}
