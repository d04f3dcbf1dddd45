package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ModerationStats agrège toutes les métriques de modération
type ModerationStats struct {
	// --- CHANNEL METRICS ---
	ChannelsCreated uint64 `json:"channels_created"`
	ChannelsDeleted uint64 `json:"channels_deleted"`
	ActiveChannels  int    `json:"active_channels"`

	// --- MEMBERSHIP METRICS ---
	Subscriptions   uint64 `json:"subscriptions"`
	Unsubscriptions uint64 `json:"unsubscriptions"`
	BansIssued      uint64 `json:"bans_issued"`
	PurgeScans      uint64 `json:"purge_scans"`
	BansExpired     uint64 `json:"bans_expired"`
	AuthFailures    uint64 `json:"auth_failures"`

	// --- SYSTEM METRICS ---
	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	NumGC         uint32  `json:"num_gc"`
	CPUPercent    float64 `json:"cpu_percent"`
	ResidentMemMb uint64  `json:"resident_mem_mb"`
}

// MonitoringManager gère la télémétrie en temps réel
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats ModerationStats

	// Compteurs atomiques alimentés par les services
	ChannelsCreated uint64
	ChannelsDeleted uint64
	Subscriptions   uint64
	Unsubscriptions uint64
	BansIssued      uint64
	AuthFailures    uint64
	LastCheck       time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		LastCheck: time.Now(),
	}
}

func (mm *MonitoringManager) IncrChannelsCreated() {
	atomic.AddUint64(&mm.ChannelsCreated, 1)
}

func (mm *MonitoringManager) IncrChannelsDeleted() {
	atomic.AddUint64(&mm.ChannelsDeleted, 1)
}

func (mm *MonitoringManager) IncrSubscriptions() {
	atomic.AddUint64(&mm.Subscriptions, 1)
}

func (mm *MonitoringManager) IncrUnsubscriptions() {
	atomic.AddUint64(&mm.Unsubscriptions, 1)
}

func (mm *MonitoringManager) IncrBansIssued() {
	atomic.AddUint64(&mm.BansIssued, 1)
}

func (mm *MonitoringManager) IncrAuthFailures() {
	atomic.AddUint64(&mm.AuthFailures, 1)
}

// Listen recalcule les métriques à intervalle régulier jusqu'à annulation
func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("🛑 Monitoring manager arrêté")
			return

		case <-ticker.C:
			mm.updateStats()
		}
	}
}

// updateStats charge les compteurs cumulés et les métriques système Go
func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.latestStats.ChannelsCreated = atomic.LoadUint64(&mm.ChannelsCreated)
	mm.latestStats.ChannelsDeleted = atomic.LoadUint64(&mm.ChannelsDeleted)
	mm.latestStats.Subscriptions = atomic.LoadUint64(&mm.Subscriptions)
	mm.latestStats.Unsubscriptions = atomic.LoadUint64(&mm.Unsubscriptions)
	mm.latestStats.BansIssued = atomic.LoadUint64(&mm.BansIssued)
	mm.latestStats.AuthFailures = atomic.LoadUint64(&mm.AuthFailures)
	mm.LastCheck = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	mm.log.Debug("📊 Stats mises à jour",
		"channels_created", mm.latestStats.ChannelsCreated,
		"bans_issued", mm.latestStats.BansIssued,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

// UpdateChannelCount est alimenté par le registre des salons
func (mm *MonitoringManager) UpdateChannelCount(n int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.ActiveChannels = n
}

// SetPurgeStats reporte les compteurs cumulés des scans de bannissements
func (mm *MonitoringManager) SetPurgeStats(scans, expired uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.PurgeScans = scans
	mm.latestStats.BansExpired = expired
}

// UpdateProcessStats fusionne les mesures du processus (CPU, RSS)
func (mm *MonitoringManager) UpdateProcessStats(cpuPercent float64, residentMb uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.CPUPercent = cpuPercent
	mm.latestStats.ResidentMemMb = residentMb
}

func (mm *MonitoringManager) GetLatest() ModerationStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return mm.latestStats
}
