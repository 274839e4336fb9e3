package logging

import "testing"

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		if _, err := New(Config{Level: level}); err != nil {
			t.Errorf("New(%q): %v", level, err)
		}
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "verbose"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewDefault_NeverNil(t *testing.T) {
	if NewDefault() == nil {
		t.Fatal("NewDefault returned nil")
	}
}
