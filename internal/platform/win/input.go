//go:build windows

package win

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unsafe"
)

// SendInput event flags.
const (
	mouseEventfMove       = 0x0001
	mouseEventfLeftDown   = 0x0002
	mouseEventfLeftUp     = 0x0004
	mouseEventfWheel      = 0x0800
	mouseEventfAbsolute   = 0x8000
	keyEventfKeyUp        = 0x0002
	keyEventfUnicode      = 0x0004
	inputTypeMouse uint32 = 0
	inputTypeKeybd uint32 = 1

	// wheelDelta is one detent of the mouse wheel.
	wheelDelta = 120
)

// Virtual key codes for named keys.
var virtualKeys = map[string]uint16{
	"enter":     0x0D,
	"tab":       0x09,
	"escape":    0x1B,
	"esc":       0x1B,
	"backspace": 0x08,
	"delete":    0x2E,
	"alt":       0x12, // VK_MENU
	"up":        0x26,
	"down":      0x28,
	"left":      0x25,
	"right":     0x27,
}

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// inputEvent mirrors the Win32 INPUT struct: a type discriminant followed by
// a 32-byte union, 40 bytes total on amd64. The mouse member is the largest,
// so it sizes the union; keyboard events are overlaid onto it.
type inputEvent struct {
	Type uint32
	_    [4]byte
	MI   mouseInput
}

func mouseEvent(mi mouseInput) inputEvent {
	return inputEvent{Type: inputTypeMouse, MI: mi}
}

func keybdEvent(ki keybdInput) inputEvent {
	ev := inputEvent{Type: inputTypeKeybd}
	*(*keybdInput)(unsafe.Pointer(&ev.MI)) = ki
	return ev
}

func sendInputs(events []inputEvent) error {
	if len(events) == 0 {
		return nil
	}
	sent, _, err := procSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if int(sent) != len(events) {
		return fmt.Errorf("SendInput injected %d of %d events: %v", sent, len(events), err)
	}
	return nil
}

// Inputter implements platform.Inputter via SendInput.
type Inputter struct{}

// NewInputter creates a Windows input injector.
func NewInputter() *Inputter {
	return &Inputter{}
}

// absoluteCoords normalizes screen pixels to the 0..65535 space absolute
// mouse events use.
func absoluteCoords(x, y int) (int32, int32) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w <= 1 || h <= 1 {
		return int32(x), int32(y)
	}
	ax := int32((int64(x) * 65535) / int64(w-1))
	ay := int32((int64(y) * 65535) / int64(h-1))
	return ax, ay
}

func (in *Inputter) MoveMouse(x, y int) error {
	ax, ay := absoluteCoords(x, y)
	return sendInputs([]inputEvent{
		mouseEvent(mouseInput{Dx: ax, Dy: ay, Flags: mouseEventfMove | mouseEventfAbsolute}),
	})
}

func (in *Inputter) Click(x, y int) error {
	ax, ay := absoluteCoords(x, y)
	return sendInputs([]inputEvent{
		mouseEvent(mouseInput{Dx: ax, Dy: ay, Flags: mouseEventfMove | mouseEventfAbsolute}),
		mouseEvent(mouseInput{Dx: ax, Dy: ay, Flags: mouseEventfLeftDown | mouseEventfAbsolute}),
		mouseEvent(mouseInput{Dx: ax, Dy: ay, Flags: mouseEventfLeftUp | mouseEventfAbsolute}),
	})
}

func (in *Inputter) Scroll(delta int) error {
	return sendInputs([]inputEvent{
		mouseEvent(mouseInput{
			MouseData: uint32(int32(delta * wheelDelta)),
			Flags:     mouseEventfWheel,
		}),
	})
}

// TypeText injects each UTF-16 code unit as a unicode key down/up pair.
// Characters go in verbatim, independent of keyboard layout.
func (in *Inputter) TypeText(text string) error {
	units := utf16.Encode([]rune(text))
	events := make([]inputEvent, 0, len(units)*2)
	for _, u := range units {
		events = append(events,
			keybdEvent(keybdInput{Scan: u, Flags: keyEventfUnicode}),
			keybdEvent(keybdInput{Scan: u, Flags: keyEventfUnicode | keyEventfKeyUp}),
		)
	}
	return sendInputs(events)
}

func (in *Inputter) PressKey(key string) error {
	vk, ok := virtualKeys[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown key: %q", key)
	}
	return sendInputs([]inputEvent{
		keybdEvent(keybdInput{Vk: vk}),
		keybdEvent(keybdInput{Vk: vk, Flags: keyEventfKeyUp}),
	})
}

// tapAlt taps the Alt key, satisfying the foreground-lock check before a
// SetForegroundWindow call.
func (in *Inputter) tapAlt() {
	_ = sendInputs([]inputEvent{
		keybdEvent(keybdInput{Vk: virtualKeys["alt"]}),
		keybdEvent(keybdInput{Vk: virtualKeys["alt"], Flags: keyEventfKeyUp}),
	})
}
