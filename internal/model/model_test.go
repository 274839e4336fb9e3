package model

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestWindow_Center(t *testing.T) {
	w := Window{Bounds: [4]int{100, 50, 800, 600}}
	x, y := w.Center()
	if x != 500 || y != 350 {
		t.Errorf("Center() = (%d, %d), want (500, 350)", x, y)
	}
}

func TestScreenshot_Base64RoundTrips(t *testing.T) {
	s := &Screenshot{PNG: []byte{0x89, 'P', 'N', 'G'}}
	decoded, err := base64.StdEncoding.DecodeString(s.Base64())
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != string(s.PNG) {
		t.Error("decoded bytes differ from the original")
	}
}

func TestScreenshot_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	s := &Screenshot{PNG: []byte("payload")}
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("saved %q", data)
	}
}

func TestScreenshot_SaveEmptyFails(t *testing.T) {
	s := &Screenshot{}
	if err := s.Save(filepath.Join(t.TempDir(), "shot.png")); err == nil {
		t.Fatal("saving an empty screenshot should fail")
	}
}
