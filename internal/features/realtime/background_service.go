package realtime

import (
	"github.com/robfig/cron/v3"
)

// ConnectionPruneBackgroundService periodically pings every registered
// socket and evicts the ones that no longer answer.
type ConnectionPruneBackgroundService struct {
	registry *ConnectionRegistry
}

func (s *ConnectionPruneBackgroundService) Run() {
	scheduler := cron.New()

	_, err := scheduler.AddFunc("@every 1m", s.registry.PruneDeadConnections)
	if err != nil {
		log.Error("Failed to schedule connection pruning", "error", err)
		return
	}

	scheduler.Run()
}
