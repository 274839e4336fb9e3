package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the unset makes the default apply.
	t.Setenv("SAP_PROCESS_NAME", "x")
	os.Unsetenv("SAP_PROCESS_NAME")
	t.Setenv("LOG_LEVEL", "x")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SAP.ProcessName != "saplogon.exe" {
		t.Errorf("ProcessName = %q, want saplogon.exe", cfg.SAP.ProcessName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SAP_SYSTEM", "PRD")
	t.Setenv("SAP_CLIENT", "800")
	t.Setenv("SAP_USER", "batch")
	t.Setenv("SAP_PASSWORD", "hunter2")
	t.Setenv("SAP_GUI_PATH", `D:\SAP\FrontEnd\SAPGUI`)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SAP.System != "PRD" || cfg.SAP.Client != "800" {
		t.Errorf("got %+v", cfg.SAP)
	}
	if cfg.SAP.GUIPath != `D:\SAP\FrontEnd\SAPGUI` {
		t.Errorf("GUIPath = %q", cfg.SAP.GUIPath)
	}
}

func TestMissingCredentials_AllUnset(t *testing.T) {
	var sap SAPConfig
	missing := sap.MissingCredentials()
	want := []string{"SAP_SYSTEM", "SAP_CLIENT", "SAP_USER", "SAP_PASSWORD"}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing = %v, want %v", missing, want)
		}
	}
}

func TestMissingCredentials_Complete(t *testing.T) {
	sap := SAPConfig{System: "TST", Client: "100", User: "u", Password: "p"}
	if missing := sap.MissingCredentials(); len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestMissingCredentials_Partial(t *testing.T) {
	sap := SAPConfig{System: "TST", User: "u"}
	missing := sap.MissingCredentials()
	if len(missing) != 2 || missing[0] != "SAP_CLIENT" || missing[1] != "SAP_PASSWORD" {
		t.Errorf("missing = %v, want [SAP_CLIENT SAP_PASSWORD]", missing)
	}
}
