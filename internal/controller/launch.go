package controller

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// LaunchTransaction starts a fresh SAP GUI session opening the given
// transaction code and returns the new session plus an initial screenshot.
//
// The sequence: validate connection parameters (a LaunchConfigError aborts
// before anything is spawned), best-effort kill of pre-existing instances to
// avoid ambiguous multi-instance state, spawn with the transaction embedded
// in the launch arguments, poll for the live GUI process within the startup
// budget, dismiss any known startup dialog, capture. The session is treated
// as active optimistically once the startup budget elapses; there is no
// positive readiness signal from the GUI.
//
// A new launch supersedes any prior session; the controller tracks none of
// them itself.
func (c *Controller) LaunchTransaction(transaction string) (*Session, *model.Screenshot, error) {
	if missing := c.sap.MissingCredentials(); len(missing) > 0 {
		return nil, nil, &LaunchConfigError{Missing: missing}
	}

	c.log.Info("launching transaction", zap.String("transaction", transaction))

	// Cleanup is best-effort by contract: a failed kill of an already-dead
	// process must not block the relaunch.
	if err := c.provider.Processes.Cleanup(); err != nil {
		c.log.Warn("pre-launch cleanup failed", zap.Error(err))
	}
	c.sleep(c.timing.CleanupSettle)

	pid, err := c.provider.Processes.Spawn(platform.LaunchSpec{
		System:      c.sap.System,
		Client:      c.sap.Client,
		User:        c.sap.User,
		Password:    c.sap.Password,
		Transaction: transaction,
		GUIPath:     c.sap.GUIPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to launch SAP GUI: %w", err)
	}

	// The spawned shortcut process hands off to the live GUI process; poll
	// for the latter so the session points at the process that owns the
	// windows.
	if guiPID, ok := c.awaitProcess(); ok {
		pid = guiPID
	} else {
		c.log.Warn("target process not observed within startup budget, proceeding optimistically",
			zap.String("process", c.sap.ProcessName))
	}

	sess := &Session{
		ID:          uuid.NewString(),
		PID:         pid,
		Transaction: transaction,
		StartedAt:   time.Now(),
	}
	c.log.Info("session started",
		zap.String("session", sess.ID),
		zap.Int("pid", sess.PID),
		zap.String("transaction", transaction))

	c.sleep(c.timing.StartupSettle)
	c.DismissStartupDialogs(sess)

	shot, err := c.capture()
	if err != nil {
		return sess, nil, err
	}
	return sess, shot, nil
}

// awaitProcess polls for the live GUI process by image name within the
// startup budget.
func (c *Controller) awaitProcess() (int, bool) {
	attempts := int(c.timing.StartupBudget / c.timing.StartupInterval)
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if pid, ok := c.provider.Processes.FindByName(c.sap.ProcessName); ok {
			c.log.Debug("target process found", zap.Int("pid", pid))
			return pid, true
		}
		c.sleep(c.timing.StartupInterval)
	}
	return 0, false
}

// EndSession forcibly terminates the target application. Best-effort by
// contract: failures are logged and swallowed, the caller always observes
// success. A subsequent launch works regardless of whether this cleanup
// actually terminated anything.
func (c *Controller) EndSession(sess *Session) {
	if sess != nil {
		c.log.Info("ending session",
			zap.String("session", sess.ID), zap.Int("pid", sess.PID))
	}
	if err := c.provider.Processes.Cleanup(); err != nil {
		c.log.Warn("session cleanup failed", zap.Error(err))
	}
}
