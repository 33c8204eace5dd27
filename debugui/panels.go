package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/world"
)

// Stat is one labelled line of a panel.
type Stat struct {
	Label string
	Value string
}

// SessionSummary lists the counters of s in display order.
func SessionSummary(s *game.Session) []Stat {
	live := s.Storage().CollectStats()
	return []Stat{
		{"State", s.State().String()},
		{"Run", s.RunID().String()},
		{"Score", geom.FormatNumber(s.Score())},
		{"Distance", fmt.Sprintf("%.0f", s.Distance())},
		{"Speed", fmt.Sprintf("%.1f / %.0f", s.Speed(), s.MaxSpeed())},
		{"Spawn Interval", s.SpawnInterval().String()},
		{"Elapsed", s.Elapsed().Round(time.Millisecond).String()},
		{"Enemies", fmt.Sprintf("%d", live.EnemyCount)},
		{"Effects", fmt.Sprintf("%d", live.EffectCount)},
		{"Spawned / Deleted", fmt.Sprintf("%d / %d", live.TotalSpawned, live.TotalDeleted)},
	}
}

// SystemRows flattens scheduler stats into table rows of name, executions,
// average and max duration.
func SystemRows(stats *world.SchedulerStats) [][4]string {
	if stats == nil {
		return nil
	}
	rows := make([][4]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		rows = append(rows, [4]string{
			sys.Name,
			fmt.Sprintf("%d", sys.ExecutionCount),
			formatMicros(sys.AvgDuration),
			formatMicros(sys.MaxDuration),
		})
	}
	return rows
}

func formatMicros(d time.Duration) string {
	return fmt.Sprintf("%.1f us", float64(d)/float64(time.Microsecond))
}

// SessionPanel shows the session counters, frame timings and lifecycle
// controls.
type SessionPanel struct {
	Session *game.Session
	History *FrameHistory
}

func (p *SessionPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, stat := range SessionSummary(p.Session) {
		imgui.Text(fmt.Sprintf("%s: %s", stat.Label, stat.Value))
	}

	if p.History != nil && p.History.Len() > 0 {
		imgui.Separator()
		lo, hi := p.History.Extremes()
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", p.History.Average(), p.History.FPS()))
		imgui.Text(fmt.Sprintf("Min/Max: %.2f / %.2f ms", lo, hi))
		samples := p.History.Ordered()
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	imgui.Separator()
	p.renderControls()
	imgui.End()
}

func (p *SessionPanel) renderControls() {
	s := p.Session
	switch s.State() {
	case game.StateIdle:
		if imgui.Button("Start") {
			_ = s.Start()
		}
	case game.StateActive:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		if imgui.Button("Pause") {
			_ = s.Pause()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case game.StatePaused:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		if imgui.Button("Resume") {
			_ = s.Resume()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		if imgui.Button("Restart") {
			_ = s.Restart()
		}
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	case game.StateOver:
		if imgui.Button("Restart") {
			_ = s.Restart()
		}
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}
}

// SchedulerPanel shows per-system timings for both session schedules.
type SchedulerPanel struct {
	Session *game.Session
}

func (p *SchedulerPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	active, windDown := p.Session.Stats()
	if imgui.BeginTabBar("schedules") {
		if imgui.BeginTabItem("Active") {
			renderSchedule("active", active)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Wind Down") {
			renderSchedule("winddown", windDown)
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}
	imgui.End()
}

func renderSchedule(id string, stats *world.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d  Commands: %d", stats.Frames, stats.TotalExecutions, stats.Commands))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(id, 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range SystemRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}
}

// EntityPanel lists live traffic and effects and inspects the player or a
// selected enemy.
type EntityPanel struct {
	Session  *game.Session
	selected world.EntityId
}

func (p *EntityPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	storage := p.Session.Storage()

	if imgui.TreeNodeStr("Player") {
		renderStruct("player", p.Session.Player())
		imgui.TreePop()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("enemies", 5, tableFlags, imgui.NewVec2(0, 160), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Model")
		imgui.TableSetupColumn("Lane")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Speed")
		imgui.TableHeadersRow()

		for id, v := range storage.Enemies() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(id.String(), id == p.selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				p.selected = id
			}
			imgui.TableNextColumn()
			imgui.Text(string(v.Model))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", v.Lane))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f", v.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f", v.Speed))
		}
		imgui.EndTable()
	}

	if enemy, ok := storage.Enemy(p.selected); ok {
		if imgui.TreeNodeStr(p.selected.String()) {
			renderStruct(p.selected.String(), enemy)
			imgui.TreePop()
		}
	} else {
		p.selected = 0
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Effects (%d)", storage.EffectCount())) {
		for id, e := range storage.Effects() {
			imgui.BulletText(fmt.Sprintf("%s %s", id, e.Kind()))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// NewSessionOverlay builds an overlay with the session, systems and entity
// panels. history may be nil.
func NewSessionOverlay(s *game.Session, history *FrameHistory) *Overlay {
	o := NewOverlay()
	o.Add("session", (&SessionPanel{Session: s, History: history}).Render)
	o.Add("systems", (&SchedulerPanel{Session: s}).Render)
	o.Add("entities", (&EntityPanel{Session: s}).Render)
	return o
}
