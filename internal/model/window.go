package model

// Window describes a visible top-level window of the target application.
//
// Windows are transient: the SAP GUI creates, destroys and resizes them
// between calls, so a Window is re-resolved for every high-level action and
// never cached across actions.
type Window struct {
	// ID is the opaque OS window handle.
	ID uintptr `yaml:"id" json:"id"`

	Title string `yaml:"title" json:"title"`

	// PID is the owning process id.
	PID int `yaml:"pid" json:"pid"`

	// Process is the owning process image name, lowercased.
	Process string `yaml:"process" json:"process"`

	// Bounds is [x, y, width, height] in screen coordinates.
	Bounds [4]int `yaml:"bounds" json:"bounds"`

	Focused   bool `yaml:"focused,omitempty" json:"focused,omitempty"`
	Minimized bool `yaml:"minimized,omitempty" json:"minimized,omitempty"`
}

// Center returns the window's center point in screen coordinates.
func (w Window) Center() (int, int) {
	return w.Bounds[0] + w.Bounds[2]/2, w.Bounds[1] + w.Bounds[3]/2
}
