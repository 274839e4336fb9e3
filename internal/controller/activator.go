package controller

import (
	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
)

// activate forces the window into a usable state: restored if minimized,
// maximized, and holding input focus. The restore and maximize steps are
// best-effort; focus is verified by bounded polling and is the one step that
// must succeed, since all subsequent input would otherwise be misdirected.
func (c *Controller) activate(w model.Window) error {
	wm := c.provider.WindowManager

	if w.Minimized {
		if err := wm.Restore(w); err != nil {
			c.log.Debug("restore failed", zap.String("title", w.Title), zap.Error(err))
		}
		c.sleep(c.timing.StepDelay)
	}

	if err := wm.Maximize(w); err != nil {
		c.log.Debug("maximize failed", zap.String("title", w.Title), zap.Error(err))
	}
	c.sleep(c.timing.StepDelay)

	// The OS may silently drop a single focus request (focus-stealing
	// prevention), so the request is re-issued on every poll iteration.
	attempts := int(c.timing.FocusTimeout / c.timing.FocusInterval)
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err := wm.Focus(w); err != nil {
			c.log.Debug("focus request failed", zap.String("title", w.Title), zap.Error(err))
		}
		focused, err := wm.Focused()
		if err == nil && focused == w.ID {
			c.log.Debug("window activated", zap.String("title", w.Title))
			return nil
		}
		c.sleep(c.timing.FocusInterval)
	}

	return &ActivationError{Title: w.Title, Timeout: c.timing.FocusTimeout}
}
