// package sweep runs the periodic idle-room cleanup
package sweep

import (
	"context"
	"time"

	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
)

// Engine periodically enqueues an idle-room sweep onto the dispatcher.
// The tick only schedules; the sweep itself runs as a dispatcher task like
// every other state mutation.
type Engine struct {
	cfg    *config.DuelConfig
	rooms  rooms.IRoomService
	tasks  primary.TaskQueue
	logger primary.Logger
}

// NewEngine creates a new sweep engine
func NewEngine(
	cfg *config.DuelConfig,
	roomService rooms.IRoomService,
	tasks primary.TaskQueue,
	logger primary.Logger,
) *Engine {
	return &Engine{
		cfg:    cfg,
		rooms:  roomService,
		tasks:  tasks,
		logger: logger,
	}
}

// Start launches the sweep loop; it stops when ctx is cancelled
func (e *Engine) Start(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.SweepInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.logger.Debug("Scheduling idle room sweep")
				e.tasks.Enqueue(e.rooms.SweepIdle)
			}
		}
	}()
}
