package controller

import (
	"strings"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// DialogHeuristic describes a known incidental modal dialog and how to
// dismiss it. The click point is a fixed ratio of the dialog's size, a
// heuristic coupled to the known dialog layout rather than its content.
type DialogHeuristic struct {
	// Name identifies the heuristic in logs.
	Name string

	// TitleSubstring matches the dialog window's title.
	TitleSubstring string

	// ClickXRatio and ClickYRatio locate the click point as fractions of
	// the dialog's width and height.
	ClickXRatio float64
	ClickYRatio float64

	// ConfirmKey is pressed after the click to confirm the choice.
	ConfirmKey string
}

// DefaultDialogHeuristics returns the built-in known-dialog table.
//
// The multi-logon entry handles the "License Information for Multiple
// Logons" warning the SAP GUI raises non-deterministically after launch when
// a prior session for the same credentials is still active server-side. The
// 38%-height point targets the "continue and end other sessions" radio
// option in that dialog's layout.
func DefaultDialogHeuristics() []DialogHeuristic {
	return []DialogHeuristic{
		{
			Name:           "multi-logon",
			TitleSubstring: "License Information for Multiple Logons",
			ClickXRatio:    0.5,
			ClickYRatio:    0.38,
			ConfirmKey:     "enter",
		},
	}
}

// DismissStartupDialogs scans the session process's windows for known modal
// dialogs and dismisses the first match. Best-effort: a dialog that never
// appears within the polling budget is a silent no-op, never an error.
func (c *Controller) DismissStartupDialogs(sess *Session) {
	if sess == nil {
		return
	}

	attempts := int(c.timing.PopupBudget / c.timing.PopupInterval)
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if w, h, ok := c.findKnownDialog(sess.PID); ok {
			c.dismissDialog(w, h)
			return
		}
		c.sleep(c.timing.PopupInterval)
	}
	c.log.Debug("no known dialog appeared", zap.Int("pid", sess.PID))
}

// findKnownDialog scans windows owned by the session process for a title
// matching any heuristic.
func (c *Controller) findKnownDialog(pid int) (model.Window, DialogHeuristic, bool) {
	windows, err := c.provider.Windows.ListWindows(platform.ListOptions{PID: pid})
	if err != nil {
		c.log.Debug("dialog scan failed", zap.Error(err))
		return model.Window{}, DialogHeuristic{}, false
	}
	for _, w := range windows {
		for _, h := range c.dialogs {
			if strings.Contains(w.Title, h.TitleSubstring) {
				return w, h, true
			}
		}
	}
	return model.Window{}, DialogHeuristic{}, false
}

// dismissDialog activates the dialog, clicks its heuristic point and presses
// the confirm key. Every step is best-effort: failing to dismiss an
// incidental dialog must not fail the operation that triggered the scan.
func (c *Controller) dismissDialog(w model.Window, h DialogHeuristic) {
	c.log.Info("dismissing known dialog",
		zap.String("dialog", h.Name), zap.String("title", w.Title))

	if err := c.activate(w); err != nil {
		c.log.Warn("failed to activate dialog, clicking anyway", zap.Error(err))
	}

	// Click point: ratio offset within the dialog, scaled, relative to the
	// dialog's screen position.
	dx := float64(w.Bounds[2]) * h.ClickXRatio
	dy := float64(w.Bounds[3]) * h.ClickYRatio
	px := w.Bounds[0] + int(dx*c.scale)
	py := w.Bounds[1] + int(dy*c.scale)

	if err := c.provider.Inputter.MoveMouse(px, py); err != nil {
		c.log.Warn("dialog mouse move failed", zap.Error(err))
	}
	c.sleep(c.timing.StepDelay)
	if err := c.provider.Inputter.Click(px, py); err != nil {
		c.log.Warn("dialog click failed", zap.Error(err))
	}
	c.sleep(c.timing.StepDelay)
	if err := c.provider.Inputter.PressKey(h.ConfirmKey); err != nil {
		c.log.Warn("dialog confirm key failed", zap.Error(err))
	}

	// Give the dialog time to close before the caller proceeds.
	c.sleep(c.timing.PopupSettle)
	c.log.Info("dialog dismissed", zap.String("dialog", h.Name))
}
