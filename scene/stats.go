package scene

import "time"

// Phase identifies one batched dispatch pass.
type Phase uint8

const (
	PhaseResize Phase = iota
	PhasePause
	PhaseResume
	PhasePreUpdate
	PhaseUpdate
	PhasePostUpdate
	PhasePreRender
	PhaseRender
	PhasePostRender
	PhaseDebug
	PhaseDestroy

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseResize:     "resize",
	PhasePause:      "pause",
	PhaseResume:     "resume",
	PhasePreUpdate:  "pre-update",
	PhaseUpdate:     "update",
	PhasePostUpdate: "post-update",
	PhasePreRender:  "pre-render",
	PhaseRender:     "render",
	PhasePostRender: "post-render",
	PhaseDebug:      "debug",
	PhaseDestroy:    "destroy",
}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// PhaseStats provides statistics about a scene's dispatch passes.
type PhaseStats struct {
	Frames          int64
	TotalExecutions int64
	Phases          []PhaseStat
}

// PhaseStat provides execution statistics for a single phase.
type PhaseStat struct {
	Phase          Phase
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// Lookup returns the stats of phase p.
func (s *PhaseStats) Lookup(p Phase) (PhaseStat, bool) {
	for _, st := range s.Phases {
		if st.Phase == p {
			return st, true
		}
	}
	return PhaseStat{}, false
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type phaseRecorder struct {
	frames int64
	phases [phaseCount]phaseStatsInternal
}

func (r *phaseRecorder) record(p Phase, d time.Duration) {
	st := &r.phases[p]
	if st.executionCount == 0 || d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
}

func (r *phaseRecorder) snapshot() PhaseStats {
	stats := PhaseStats{
		Frames: r.frames,
		Phases: make([]PhaseStat, 0, phaseCount),
	}
	for p := range phaseCount {
		internal := r.phases[p]
		avg := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}
		stats.Phases = append(stats.Phases, PhaseStat{
			Phase:          p,
			Name:           p.String(),
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
		stats.TotalExecutions += internal.executionCount
	}
	return stats
}
