package controller

import (
	"time"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/config"
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// fakeBackend implements every platform capability in memory and records
// all calls so tests can assert on exact sequences and coordinates.
type fakeBackend struct {
	windows   []model.Window
	listErr   error
	listCalls []platform.ListOptions

	// focused tracks the window holding input focus. Focus grants it after
	// focusDenials denied requests; -1 denies forever.
	focused      uintptr
	focusDenials int
	focusCalls   int
	restored     []uintptr
	maximized    []uintptr

	clicks  [][2]int
	moves   [][2]int
	typed   []string
	scrolls []int
	keys    []string

	png        []byte
	captureErr error
	captures   int

	spawnPID   int
	spawnErr   error
	spawnSpecs []platform.LaunchSpec

	// findPID is reported by FindByName after findDelay prior calls miss;
	// findDelay -1 means the process never appears.
	findPID   int
	findDelay int
	findCalls int

	// cleanupErrs is how many Cleanup calls fail with cleanupErr before
	// succeeding.
	cleanupErr  error
	cleanupErrs int
	cleanups    int

	scale float64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		png:     []byte("png-bytes"),
		findPID: 4242,
		scale:   1.0,
	}
}

func (f *fakeBackend) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.listCalls = append(f.listCalls, opts)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if opts.PID == 0 {
		return f.windows, nil
	}
	var out []model.Window
	for _, w := range f.windows {
		if w.PID == opts.PID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeBackend) Restore(w model.Window) error {
	f.restored = append(f.restored, w.ID)
	return nil
}

func (f *fakeBackend) Maximize(w model.Window) error {
	f.maximized = append(f.maximized, w.ID)
	return nil
}

func (f *fakeBackend) Focus(w model.Window) error {
	f.focusCalls++
	if f.focusDenials < 0 {
		return nil
	}
	if f.focusCalls > f.focusDenials {
		f.focused = w.ID
	}
	return nil
}

func (f *fakeBackend) Focused() (uintptr, error) { return f.focused, nil }

func (f *fakeBackend) Click(x, y int) error {
	f.clicks = append(f.clicks, [2]int{x, y})
	return nil
}

func (f *fakeBackend) MoveMouse(x, y int) error {
	f.moves = append(f.moves, [2]int{x, y})
	return nil
}

func (f *fakeBackend) TypeText(text string) error {
	f.typed = append(f.typed, text)
	return nil
}

func (f *fakeBackend) Scroll(delta int) error {
	f.scrolls = append(f.scrolls, delta)
	return nil
}

func (f *fakeBackend) PressKey(key string) error {
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeBackend) CaptureScreen() ([]byte, error) {
	f.captures++
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return f.png, nil
}

func (f *fakeBackend) Spawn(spec platform.LaunchSpec) (int, error) {
	f.spawnSpecs = append(f.spawnSpecs, spec)
	if f.spawnErr != nil {
		return 0, f.spawnErr
	}
	if f.spawnPID == 0 {
		f.spawnPID = 1000
	}
	return f.spawnPID, nil
}

func (f *fakeBackend) FindByName(name string) (int, bool) {
	f.findCalls++
	if f.findDelay < 0 || f.findCalls <= f.findDelay {
		return 0, false
	}
	return f.findPID, true
}

func (f *fakeBackend) Cleanup() error {
	f.cleanups++
	if f.cleanupErrs > 0 {
		f.cleanupErrs--
		return f.cleanupErr
	}
	return nil
}

func (f *fakeBackend) Scale() float64 { return f.scale }

func (f *fakeBackend) provider() *platform.Provider {
	return &platform.Provider{
		Windows:       f,
		WindowManager: f,
		Inputter:      f,
		Screenshotter: f,
		Processes:     f,
		Scale:         f,
	}
}

func testSAPConfig() config.SAPConfig {
	return config.SAPConfig{
		System:      "TST",
		Client:      "100",
		User:        "tester",
		Password:    "secret",
		ProcessName: "saplogon.exe",
	}
}

// newTestController builds a Controller over the fake with all sleeps
// recorded instead of executed.
func newTestController(f *fakeBackend) (*Controller, *[]time.Duration) {
	var slept []time.Duration
	c := New(f.provider(), testSAPConfig(), zap.NewNop(),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }))
	return c, &slept
}

func sessionWindow(id uintptr, title string) model.Window {
	return model.Window{
		ID:      id,
		Title:   title,
		PID:     4242,
		Process: "saplogon.exe",
		Bounds:  [4]int{0, 0, 1920, 1080},
	}
}
