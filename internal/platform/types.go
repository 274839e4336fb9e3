package platform

import (
	"fmt"
	"strings"
)

// ScrollDirection names a scroll request. Directions use "content moves"
// semantics: ScrollUp issues a positive wheel delta, which moves the content
// down so earlier content comes into view.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

// ParseScrollDirection converts a string argument to a ScrollDirection.
func ParseScrollDirection(s string) (ScrollDirection, error) {
	switch strings.ToLower(s) {
	case "up":
		return ScrollUp, nil
	case "down":
		return ScrollDown, nil
	default:
		return ScrollUp, fmt.Errorf("unknown scroll direction: %q (expected up or down)", s)
	}
}

func (d ScrollDirection) String() string {
	if d == ScrollDown {
		return "down"
	}
	return "up"
}

// ListOptions controls window enumeration.
type ListOptions struct {
	Process string // Filter by owning process image name (case-insensitive)
	PID     int    // Filter by owning process id (0 = any)
}

// LaunchSpec carries the connection parameters embedded in the target
// application's launch arguments.
type LaunchSpec struct {
	System      string
	Client      string
	User        string
	Password    string
	Transaction string

	// GUIPath overrides the backend's default installation path.
	GUIPath string
}
