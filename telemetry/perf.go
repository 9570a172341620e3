package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies a timed part of a simulation tick.
type Phase int

const (
	PhaseMove      Phase = iota // goal decision, movement and eating
	PhaseTelemetry              // round stats and CSV output
	PhaseRound                  // respawn for the next round
	numPhases
)

var phaseNames = [numPhases]string{"move", "telemetry", "round"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times ticks and their phases over a rolling window of ticks.
type PerfCollector struct {
	window []tickSample
	next   int
	filled int

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over the last windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{window: make([]tickSample, windowSize), now: time.Now}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.cur = tickSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase, p.phaseStart, p.inPhase = phase, now, true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false
	p.cur.total = now.Sub(p.tickStart)

	p.window[p.next] = p.cur
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

// PerfStats summarises the ticks currently in the window.
type PerfStats struct {
	Ticks          int
	AvgTick        time.Duration
	MinTick        time.Duration
	MaxTick        time.Duration
	TicksPerSecond float64

	// Share of the average tick spent in each phase, in percent.
	PhasePct [numPhases]float64
}

// Stats aggregates the window. With no ticks recorded it returns the zero value.
func (p *PerfCollector) Stats() PerfStats {
	if p.filled == 0 {
		return PerfStats{}
	}

	var s PerfStats
	var total time.Duration
	var phaseSum [numPhases]time.Duration
	for i, sample := range p.window[:p.filled] {
		total += sample.total
		if i == 0 || sample.total < s.MinTick {
			s.MinTick = sample.total
		}
		s.MaxTick = max(s.MaxTick, sample.total)
		for ph, d := range sample.phases {
			phaseSum[ph] += d
		}
	}

	s.Ticks = p.filled
	s.AvgTick = total / time.Duration(p.filled)
	if total > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
		for ph, d := range phaseSum {
			s.PhasePct[ph] = float64(d) / float64(total) * 100
		}
	}
	return s
}

// Pct returns the share of tick time spent in phase.
func (s PerfStats) Pct(phase Phase) float64 {
	if phase < 0 || phase >= numPhases {
		return 0
	}
	return s.PhasePct[phase]
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("min_tick_us", s.MinTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one line of perf.csv.
type PerfRow struct {
	Round        int     `csv:"round"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	MovePct      float64 `csv:"move_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
	RoundPct     float64 `csv:"round_pct"`
}

// Row flattens the summary into a perf.csv line for round.
func (s PerfStats) Row(round int) PerfRow {
	return PerfRow{
		Round:        round,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MinTickUS:    s.MinTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		MovePct:      s.PhasePct[PhaseMove],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
		RoundPct:     s.PhasePct[PhaseRound],
	}
}
