// Package ebiten binds the debug overlay to the Ebiten Dear ImGui backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/roadrush/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and drives an
// Overlay through it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// New creates the backend and its window. The ImGui ini file is disabled
// so panel layout is not persisted between runs.
func New(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Update renders one ImGui frame of the overlay. Call it from the game's
// Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// DrawOverlay composes the ImGui frame onto screen when the overlay is
// visible.
func (b *ImguiBackend) DrawOverlay(screen *ebiten.Image) {
	if b.Overlay.Visible {
		b.Draw(screen)
	}
}
