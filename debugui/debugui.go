// Package debugui renders a Dear ImGui inspector over a running session.
// Panels are plain render functions collected by an Overlay; the overlay
// also tracks whether ImGui wants the mouse or keyboard so the frontend can
// hold game input back while a panel is focused.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn every visible frame.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks Dear ImGui's input capture state.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is an ordered set of panels that can be shown or hidden as one.
type Overlay struct {
	Visible bool
	Input   InputState

	items []Item
}

// NewOverlay creates a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add appends a panel. Panels render in the order they were added.
func (o *Overlay) Add(name string, render func()) {
	o.items = append(o.items, Item{Name: name, Render: render})
}

// Items returns the registered panels.
func (o *Overlay) Items() []Item {
	return o.items
}

// Toggle flips visibility and returns the new value.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	if !o.Visible {
		o.Input = InputState{}
	}
	return o.Visible
}

// Render must be called between the backend's BeginFrame and EndFrame.
// A hidden overlay renders nothing and never captures input.
func (o *Overlay) Render() {
	if !o.Visible {
		o.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
