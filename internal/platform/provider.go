package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows       WindowLister
	WindowManager WindowManager
	Inputter      Inputter
	Screenshotter Screenshotter
	Processes     ProcessManager
	Scale         ScaleResolver
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("sapgui-cli is not supported on %s/%s; supported: windows, darwin", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win and internal/platform/mac.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
