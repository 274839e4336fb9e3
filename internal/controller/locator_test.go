package controller

import (
	"testing"

	"github.com/saptools/sapgui-cli/internal/model"
)

func TestLocate_PrefersFocusedWindow(t *testing.T) {
	f := newFakeBackend()
	second := sessionWindow(2, "SAP Easy Access (2)")
	second.Focused = true
	f.windows = []model.Window{sessionWindow(1, "SAP Easy Access"), second}

	c, _ := newTestController(f)
	w, err := c.locate()
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 2 {
		t.Errorf("selected window %d, want the focused one (2)", w.ID)
	}
}

func TestLocate_FallsBackToFirstInOrder(t *testing.T) {
	f := newFakeBackend()
	f.windows = []model.Window{
		sessionWindow(7, "SAP Easy Access"),
		sessionWindow(8, "SAP Easy Access (2)"),
	}

	c, _ := newTestController(f)
	w, err := c.locate()
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 7 {
		t.Errorf("selected window %d, want first in enumeration order (7)", w.ID)
	}
}

func TestLocate_ExcludesChooserEvenWhenSole(t *testing.T) {
	f := newFakeBackend()
	chooser := sessionWindow(1, "SAP Logon 770")
	chooser.Focused = true
	f.windows = []model.Window{chooser}

	c, _ := newTestController(f)
	_, err := c.locate()
	if !IsNotReady(err) {
		t.Fatalf("got %v, want ErrNotReady when only the chooser exists", err)
	}
}

func TestLocate_ChooserExcludedAmongCandidates(t *testing.T) {
	f := newFakeBackend()
	chooser := sessionWindow(1, "SAP Logon 770")
	chooser.Focused = true
	f.windows = []model.Window{chooser, sessionWindow(2, "SAP Easy Access")}

	c, _ := newTestController(f)
	w, err := c.locate()
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 2 {
		t.Errorf("selected window %d, want the session window (2)", w.ID)
	}
}

func TestLocate_ScopesByProcessName(t *testing.T) {
	f := newFakeBackend()
	f.windows = []model.Window{sessionWindow(1, "SAP Easy Access")}

	c, _ := newTestController(f)
	if _, err := c.locate(); err != nil {
		t.Fatal(err)
	}
	if len(f.listCalls) != 1 {
		t.Fatalf("got %d list calls, want 1", len(f.listCalls))
	}
	if f.listCalls[0].Process != "saplogon.exe" {
		t.Errorf("enumeration scoped to %q, want saplogon.exe", f.listCalls[0].Process)
	}
}
