package controller

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLaunchTransaction_HappyPath(t *testing.T) {
	f := newFakeBackend()
	f.spawnPID = 111
	f.findPID = 222

	c, _ := newTestController(f)
	sess, shot, err := c.LaunchTransaction("VA01")
	if err != nil {
		t.Fatal(err)
	}
	if sess == nil || sess.ID == "" {
		t.Fatal("expected a session with a non-empty id")
	}
	if sess.Transaction != "VA01" {
		t.Errorf("Transaction = %q, want VA01", sess.Transaction)
	}
	// The session tracks the live GUI process, not the launcher shortcut.
	if sess.PID != 222 {
		t.Errorf("PID = %d, want the resolved GUI pid 222", sess.PID)
	}
	if shot == nil || len(shot.PNG) == 0 {
		t.Fatal("expected an initial screenshot")
	}
	if len(f.spawnSpecs) != 1 {
		t.Fatalf("got %d spawns, want 1", len(f.spawnSpecs))
	}
	spec := f.spawnSpecs[0]
	if spec.System != "TST" || spec.Client != "100" || spec.User != "tester" ||
		spec.Password != "secret" || spec.Transaction != "VA01" {
		t.Errorf("launch spec = %+v", spec)
	}
}

func TestLaunchTransaction_MissingCredentialsAbortsBeforeSpawn(t *testing.T) {
	f := newFakeBackend()
	sap := testSAPConfig()
	sap.Password = ""
	sap.Client = ""
	c := New(f.provider(), sap, zap.NewNop(), WithSleep(func(time.Duration) {}))

	_, _, err := c.LaunchTransaction("VA01")
	var cfgErr *LaunchConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want *LaunchConfigError", err)
	}
	want := []string{"SAP_CLIENT", "SAP_PASSWORD"}
	if len(cfgErr.Missing) != len(want) {
		t.Fatalf("Missing = %v, want %v", cfgErr.Missing, want)
	}
	for i := range want {
		if cfgErr.Missing[i] != want[i] {
			t.Errorf("Missing = %v, want %v", cfgErr.Missing, want)
		}
	}
	if len(f.spawnSpecs) != 0 {
		t.Error("nothing must be spawned with incomplete credentials")
	}
	if f.cleanups != 0 {
		t.Error("no cleanup should run with incomplete credentials")
	}
}

func TestLaunchTransaction_CleanupFailureDoesNotBlock(t *testing.T) {
	f := newFakeBackend()
	f.cleanupErr = errors.New("process already gone")
	f.cleanupErrs = 1

	c, _ := newTestController(f)
	sess, _, err := c.LaunchTransaction("MM03")
	if err != nil {
		t.Fatalf("launch after failed cleanup: %v", err)
	}
	if sess == nil {
		t.Fatal("expected a session")
	}
	if f.cleanups != 1 {
		t.Errorf("got %d cleanups, want 1", f.cleanups)
	}
}

func TestLaunchTransaction_OptimisticWhenProcessNeverAppears(t *testing.T) {
	f := newFakeBackend()
	f.spawnPID = 111
	f.findDelay = -1

	c, _ := newTestController(f)
	sess, shot, err := c.LaunchTransaction("SE16")
	if err != nil {
		t.Fatal(err)
	}
	// The startup budget elapses, then the session proceeds with the
	// spawned pid.
	if sess.PID != 111 {
		t.Errorf("PID = %d, want the spawned pid 111", sess.PID)
	}
	if shot == nil {
		t.Fatal("expected a screenshot even without process confirmation")
	}
	if want := int((5 * time.Second) / (500 * time.Millisecond)); f.findCalls != want {
		t.Errorf("got %d process polls, want %d", f.findCalls, want)
	}
}

func TestLaunchTransaction_WaitsForLateProcess(t *testing.T) {
	f := newFakeBackend()
	f.spawnPID = 111
	f.findPID = 333
	f.findDelay = 3

	c, _ := newTestController(f)
	sess, _, err := c.LaunchTransaction("SE16")
	if err != nil {
		t.Fatal(err)
	}
	if sess.PID != 333 {
		t.Errorf("PID = %d, want 333", sess.PID)
	}
	if f.findCalls != 4 {
		t.Errorf("got %d process polls, want 4", f.findCalls)
	}
}

func TestLaunchTransaction_SpawnFailure(t *testing.T) {
	f := newFakeBackend()
	f.spawnErr = errors.New("sapshcut.exe not found")

	c, _ := newTestController(f)
	_, _, err := c.LaunchTransaction("VA01")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, f.spawnErr) {
		t.Errorf("got %v, want wrapped spawn error", err)
	}
}

func TestLaunchTransaction_FreshSessionIDs(t *testing.T) {
	f := newFakeBackend()

	c, _ := newTestController(f)
	a, _, err := c.LaunchTransaction("VA01")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := c.LaunchTransaction("VA01")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("each launch must mint a distinct session id")
	}
}

func TestEndSession_SwallowsCleanupFailure(t *testing.T) {
	f := newFakeBackend()
	f.cleanupErr = errors.New("access denied")
	f.cleanupErrs = 1

	c, _ := newTestController(f)
	c.EndSession(&Session{ID: "s1", PID: 4242})
	if f.cleanups != 1 {
		t.Errorf("got %d cleanups, want 1", f.cleanups)
	}
}

func TestEndSession_NilSession(t *testing.T) {
	f := newFakeBackend()

	c, _ := newTestController(f)
	c.EndSession(nil)
	if f.cleanups != 1 {
		t.Error("cleanup runs even without a tracked session")
	}
}
