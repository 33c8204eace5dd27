package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/roadrush/world"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Step      time.Duration
	Workers   int
	GameLimit int
	Seed      uint64

	// Results
	Games          int
	TotalTicks     int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Scores         ScoreStats
	Systems        []world.SystemStats
	Commands       int64
	PeakTraffic    int
	AvgTraffic     float64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// ScoreStats summarises the final score of every finished game.
type ScoreStats struct {
	Min, Max int
	Avg      float64
	Samples  []int
}

func (s *ScoreStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	total := 0
	for _, v := range s.Samples {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += v
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// mergeSystems sums per-system stats of several schedulers by name,
// keeping the first scheduler's order.
func mergeSystems(all ...*world.SchedulerStats) []world.SystemStats {
	var out []world.SystemStats
	index := make(map[string]int)
	for _, stats := range all {
		if stats == nil {
			continue
		}
		for _, sys := range stats.Systems {
			i, ok := index[sys.Name]
			if !ok {
				index[sys.Name] = len(out)
				out = append(out, sys)
				continue
			}
			m := &out[i]
			if sys.ExecutionCount > 0 && (m.ExecutionCount == 0 || sys.MinDuration < m.MinDuration) {
				m.MinDuration = sys.MinDuration
			}
			m.MaxDuration = max(m.MaxDuration, sys.MaxDuration)
			m.ExecutionCount += sys.ExecutionCount
			m.TotalDuration += sys.TotalDuration
			m.LastDuration = sys.LastDuration
		}
	}
	for i := range out {
		if out[i].ExecutionCount > 0 {
			out[i].AvgDuration = out[i].TotalDuration / time.Duration(out[i].ExecutionCount)
		}
	}
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Road Rush Bench Report

## Run Configuration
- **Wall Clock Limit:** {{.Duration}}
- **Fixed Step:** {{.Step}}
- **Workers:** {{.Workers}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}
- **Seed:** {{.Seed}}

## Games
- **Finished Games:** {{.Games}}
- **Simulated Time:** {{.SimulatedTime}}
- **Score:** avg {{printf "%.1f" .Scores.Avg}}, min {{.Scores.Min}}, max {{.Scores.Max}}
- **Traffic:** peak {{.PeakTraffic}}, avg {{printf "%.1f" .AvgTraffic}} cars on the road

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
- **Commands Applied:** {{.Commands}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
