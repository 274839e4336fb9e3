//go:build windows

package win

import (
	"github.com/saptools/sapgui-cli/internal/platform/capture"
)

// baseDPI is the Windows reference DPI at 100% scaling.
const baseDPI = 96.0

// ScaleResolver implements platform.ScaleResolver via the system DPI.
type ScaleResolver struct{}

// NewScaleResolver creates a Windows DPI scale resolver.
func NewScaleResolver() *ScaleResolver {
	return &ScaleResolver{}
}

// Scale returns the system DPI divided by the 96 DPI baseline, or 1.0 when
// the DPI APIs are unavailable (pre-1607 Windows). Never fails: scaling is a
// best-effort correctness aid.
func (s *ScaleResolver) Scale() float64 {
	if err := procGetDpiForSystem.Find(); err != nil {
		return 1.0
	}
	procSetProcessDPIAware.Call()
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return 1.0
	}
	return float64(dpi) / baseDPI
}

// Screenshotter implements platform.Screenshotter for Windows.
type Screenshotter struct{}

// NewScreenshotter creates a Windows screenshotter.
func NewScreenshotter() *Screenshotter {
	return &Screenshotter{}
}

// CaptureScreen captures the full primary display as PNG bytes.
func (s *Screenshotter) CaptureScreen() ([]byte, error) {
	return capture.PrimaryDisplay()
}
