package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"channel-lab/domain/channel"
	"channel-lab/observability"
)

// TelemetryWorker periodically samples the process itself (CPU, RSS) and the
// channel registry, folds the measurements into the monitoring manager, then
// logs a compact snapshot of the moderation counters.
type TelemetryWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	registry   *channel.Registry
	interval   time.Duration
}

func NewTelemetryWorker(log *slog.Logger,
	monitoring *observability.MonitoringManager,
	registry *channel.Registry,
	interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, monitoring: monitoring, registry: registry, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	w.log.Info("Starting telemetry worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.monitoring.UpdateProcessStats(cpu, rss/1024/1024)
			w.monitoring.UpdateChannelCount(len(w.registry.Names()))
			scans, expired := w.registry.PurgeStats()
			w.monitoring.SetPurgeStats(scans, expired)

			stats := w.monitoring.GetLatest()
			w.log.Info("📊 Moderation snapshot",
				"active_channels", stats.ActiveChannels,
				"channels_created", stats.ChannelsCreated,
				"subscriptions", stats.Subscriptions,
				"bans_issued", stats.BansIssued,
				"bans_expired", stats.BansExpired,
				"auth_failures", stats.AuthFailures,
				"cpu_percent", cpu,
				"rss_mb", rss/1024/1024,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (Memory and CPU) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
