package controller

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// chooserTitle marks the SAP Logon launcher/chooser window. It is never the
// live session window and is excluded even when it is the only window the
// target process owns.
const chooserTitle = "SAP Logon"

// locate selects the live session window among the target process's visible
// top-level windows. Selection rules, in order: windows whose title matches
// the chooser pattern are excluded; among the rest, a window holding input
// focus wins; otherwise the first in enumeration order is used.
//
// Returns ErrNotReady when no window qualifies; the application may simply
// not be ready yet.
func (c *Controller) locate() (model.Window, error) {
	windows, err := c.provider.Windows.ListWindows(platform.ListOptions{
		Process: c.sap.ProcessName,
	})
	if err != nil {
		return model.Window{}, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	var candidates []model.Window
	for _, w := range windows {
		if strings.Contains(w.Title, chooserTitle) {
			c.log.Debug("skipping chooser window", zap.String("title", w.Title))
			continue
		}
		candidates = append(candidates, w)
	}
	if len(candidates) == 0 {
		return model.Window{}, ErrNotReady
	}

	for _, w := range candidates {
		if w.Focused {
			c.log.Debug("selected focused session window",
				zap.String("title", w.Title), zap.Int("pid", w.PID))
			return w, nil
		}
	}

	w := candidates[0]
	c.log.Debug("selected first session window",
		zap.String("title", w.Title), zap.Int("pid", w.PID))
	return w, nil
}
