// Package capture grabs the primary display as PNG. It is shared by the
// platform backends; github.com/kbinani/screenshot handles the per-OS
// capture APIs.
package capture

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/kbinani/screenshot"
)

// PrimaryDisplay captures the full primary display and returns PNG bytes.
// Failure here is typically a missing screen-recording permission and is a
// hard error for callers: every action depends on visual feedback.
func PrimaryDisplay() ([]byte, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active displays found")
	}

	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(0))
	if err != nil {
		return nil, fmt.Errorf("display capture failed (check screen recording permission): %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}
