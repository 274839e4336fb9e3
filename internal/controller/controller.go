// Package controller implements the SAP GUI automation core: window
// discovery, activation, synthetic input, dialog dismissal and session
// lifecycle. The OS specifics are behind the capability interfaces in
// internal/platform; everything here is platform-independent and tested
// against a fake backend.
package controller

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/config"
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// scrollMagnitude is the fixed wheel delta per scroll request, in line units.
const scrollMagnitude = 5

// Timing groups every fixed delay and polling budget the controller uses.
// There is no event-driven notification from the SAP GUI; all
// synchronization is bounded polling over these constants.
type Timing struct {
	// Settle is the pause after an injected action, giving the GUI time to
	// render the effect before the screenshot.
	Settle time.Duration

	// StepDelay separates the restore/maximize/focus activation steps.
	StepDelay time.Duration

	// FocusTimeout bounds the activation poll; FocusInterval is its
	// sampling period. The focus request is re-issued on every sample.
	FocusTimeout  time.Duration
	FocusInterval time.Duration

	// PopupBudget bounds the startup dialog scan; PopupInterval is its
	// sampling period. PopupSettle is the wait for a dismissed dialog to
	// close.
	PopupBudget   time.Duration
	PopupInterval time.Duration
	PopupSettle   time.Duration

	// StartupBudget bounds the wait for the spawned process to appear;
	// StartupInterval is its sampling period. StartupSettle is the
	// optimistic pause before the session is treated as active.
	StartupBudget   time.Duration
	StartupInterval time.Duration
	StartupSettle   time.Duration

	// CleanupSettle follows the best-effort pre-launch kill, giving the OS
	// time to tear the old processes down.
	CleanupSettle time.Duration
}

// DefaultTiming returns the production delays.
func DefaultTiming() Timing {
	return Timing{
		Settle:          500 * time.Millisecond,
		StepDelay:       200 * time.Millisecond,
		FocusTimeout:    2 * time.Second,
		FocusInterval:   100 * time.Millisecond,
		PopupBudget:     3 * time.Second,
		PopupInterval:   500 * time.Millisecond,
		PopupSettle:     3 * time.Second,
		StartupBudget:   5 * time.Second,
		StartupInterval: 500 * time.Millisecond,
		StartupSettle:   2 * time.Second,
		CleanupSettle:   time.Second,
	}
}

// Session identifies one launched SAP GUI instance. It is an explicit value
// owned by the transport layer and passed back into lifecycle operations; the
// controller itself holds no ambient process state.
type Session struct {
	ID          string
	PID         int
	Transaction string
	StartedAt   time.Time
}

// Controller drives the SAP GUI through a platform Provider. A Controller
// serves one logical session at a time and provides no internal mutual
// exclusion; the transport layer serializes calls.
type Controller struct {
	provider *platform.Provider
	sap      config.SAPConfig
	log      *zap.Logger
	timing   Timing
	dialogs  []DialogHeuristic

	// scale converts caller-supplied logical coordinates to the injection
	// API's coordinate space. Resolved once at construction and treated as
	// immutable; display-scaling changes at runtime are not tracked.
	scale float64

	// sleep is swappable so tests run the polling loops without real
	// delays.
	sleep func(time.Duration)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithTiming overrides the default delays.
func WithTiming(t Timing) Option {
	return func(c *Controller) { c.timing = t }
}

// WithSleep replaces the sleep function used by all waits and polls.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) { c.sleep = fn }
}

// WithDialogHeuristics replaces the known-dialog table.
func WithDialogHeuristics(hs []DialogHeuristic) Option {
	return func(c *Controller) { c.dialogs = hs }
}

// New creates a Controller. The display scale factor is probed once here;
// a failed probe is logged and falls back to 1.0, never an error.
func New(provider *platform.Provider, sap config.SAPConfig, log *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		sap:      sap,
		log:      log,
		timing:   DefaultTiming(),
		dialogs:  DefaultDialogHeuristics(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.scale = provider.Scale.Scale()
	if c.scale <= 0 {
		c.log.Warn("invalid display scale factor, using 1.0", zap.Float64("scale", c.scale))
		c.scale = 1.0
	}
	c.log.Debug("controller initialized",
		zap.Float64("scale", c.scale),
		zap.String("process", c.sap.ProcessName))
	return c
}

// Scale returns the cached display scale factor.
func (c *Controller) Scale() float64 { return c.scale }

// Click activates the session window, clicks at the logical display
// coordinates (x, y) and returns a screenshot of the result.
//
// Coordinates are display-absolute, not window-relative: the activator
// maximizes the window first, so the window is assumed to fill the display.
func (c *Controller) Click(x, y int) (*model.Screenshot, error) {
	if _, err := c.ensureActive(); err != nil {
		return nil, err
	}
	px, py := c.toPhysical(x, y)
	if err := c.provider.Inputter.MoveMouse(px, py); err != nil {
		return nil, fmt.Errorf("failed to move mouse to (%d, %d): %w", x, y, err)
	}
	c.sleep(c.timing.StepDelay)
	if err := c.provider.Inputter.Click(px, py); err != nil {
		return nil, fmt.Errorf("failed to click at (%d, %d): %w", x, y, err)
	}
	c.log.Debug("clicked", zap.Int("x", x), zap.Int("y", y), zap.Int("px", px), zap.Int("py", py))
	return c.settleAndCapture()
}

// MoveMouse activates the session window, moves the pointer to the logical
// display coordinates (x, y) and returns a screenshot.
func (c *Controller) MoveMouse(x, y int) (*model.Screenshot, error) {
	if _, err := c.ensureActive(); err != nil {
		return nil, err
	}
	px, py := c.toPhysical(x, y)
	if err := c.provider.Inputter.MoveMouse(px, py); err != nil {
		return nil, fmt.Errorf("failed to move mouse to (%d, %d): %w", x, y, err)
	}
	c.log.Debug("moved mouse", zap.Int("x", x), zap.Int("y", y))
	return c.settleAndCapture()
}

// TypeText activates the session window, injects the literal text as key
// events and returns a screenshot. Characters are sent verbatim; there is no
// special-key token syntax.
func (c *Controller) TypeText(text string) (*model.Screenshot, error) {
	if _, err := c.ensureActive(); err != nil {
		return nil, err
	}
	if err := c.provider.Inputter.TypeText(text); err != nil {
		return nil, fmt.Errorf("failed to type text: %w", err)
	}
	c.log.Debug("typed text", zap.Int("chars", len(text)))
	return c.settleAndCapture()
}

// Scroll activates the session window, issues one wheel event and returns a
// screenshot. ScrollUp always issues a positive delta (content moves down),
// ScrollDown a negative one; the magnitude is constant across calls.
func (c *Controller) Scroll(dir platform.ScrollDirection) (*model.Screenshot, error) {
	if _, err := c.ensureActive(); err != nil {
		return nil, err
	}
	delta := scrollMagnitude
	if dir == platform.ScrollDown {
		delta = -scrollMagnitude
	}
	if err := c.provider.Inputter.Scroll(delta); err != nil {
		return nil, fmt.Errorf("failed to scroll %s: %w", dir, err)
	}
	c.log.Debug("scrolled", zap.String("direction", dir.String()), zap.Int("delta", delta))
	return c.settleAndCapture()
}

// Screenshot captures the primary display without injecting any input.
func (c *Controller) Screenshot() (*model.Screenshot, error) {
	return c.capture()
}

// ensureActive resolves the live session window and brings it to an
// interactable state. ErrNotReady propagates when no window qualifies;
// an ActivationError propagates when the window never takes focus.
func (c *Controller) ensureActive() (model.Window, error) {
	w, err := c.locate()
	if err != nil {
		return model.Window{}, err
	}
	if err := c.activate(w); err != nil {
		return model.Window{}, err
	}
	return w, nil
}

// settleAndCapture waits the fixed settle delay, then captures the display.
func (c *Controller) settleAndCapture() (*model.Screenshot, error) {
	c.sleep(c.timing.Settle)
	return c.capture()
}

func (c *Controller) capture() (*model.Screenshot, error) {
	png, err := c.provider.Screenshotter.CaptureScreen()
	if err != nil {
		return nil, &CaptureError{Err: err}
	}
	return &model.Screenshot{PNG: png}, nil
}

// toPhysical converts logical display coordinates to the injection API's
// coordinate space using the cached scale factor.
func (c *Controller) toPhysical(x, y int) (int, int) {
	return int(float64(x) * c.scale), int(float64(y) * c.scale)
}
