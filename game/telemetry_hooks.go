package game

import (
	"log/slog"

	"github.com/pthm-cable/forage/telemetry"
)

// reportRound logs and writes the stats of a finished round, plus perf stats
// every Telemetry.LogPerfEvery rounds.
func (g *Game) reportRound(stats telemetry.RoundStats) {
	if g.roundCallback != nil {
		g.roundCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WriteRound(stats); err != nil {
		slog.Error("failed to write round stats", "error", err)
	}

	every := g.config().Telemetry.LogPerfEvery
	if every <= 0 || stats.Round%every != 0 {
		return
	}
	perfStats := g.perfCollector.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if err := g.outputManager.WritePerf(perfStats, stats.Round); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
