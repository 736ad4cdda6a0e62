package workers

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	_ "github.com/shirou/gopsutil"
	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the facilitator process itself on an
// interval. The snapshot feeds the debug surface; nothing in the
// rotation path depends on it.
type HealthMonitoringWorker struct {
	mu       sync.Mutex
	log      *slog.Logger
	interval time.Duration
	last     map[string]any
}

func NewHealthMonitoringWorker(log *slog.Logger, interval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:      log,
		interval: interval,
		last:     make(map[string]any),
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.sample(proc)
		}
	}
}

func (w *HealthMonitoringWorker) sample(proc *process.Process) {
	cpu, err := proc.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return
	}
	ram, err := proc.MemoryPercent()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
		return
	}
	threads, err := proc.NumThreads()
	if err != nil {
		w.log.Error("Error while finding process thread count", "err", err)
		return
	}

	w.mu.Lock()
	w.last = map[string]any{
		"cpu_percent": cpu,
		"ram_percent": ram,
		"threads":     threads,
		"sampled_at":  time.Now().UTC().Format(time.RFC3339),
	}
	w.mu.Unlock()
}

// Stats returns the latest sample for the debug surface.
func (w *HealthMonitoringWorker) Stats() map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()

	snapshot := make(map[string]any, len(w.last))
	for k, v := range w.last {
		snapshot[k] = v
	}
	return snapshot
}
