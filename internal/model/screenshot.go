package model

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Screenshot is a captured view of the primary display, encoded as PNG.
// A fresh artifact is produced after every action; the transport layer keeps
// the most recent one for save-last-screenshot requests.
type Screenshot struct {
	PNG []byte
}

// Base64 returns the standard base64 encoding of the PNG bytes.
func (s *Screenshot) Base64() string {
	return base64.StdEncoding.EncodeToString(s.PNG)
}

// Save writes the PNG bytes to the given path.
func (s *Screenshot) Save(path string) error {
	if len(s.PNG) == 0 {
		return fmt.Errorf("screenshot is empty")
	}
	if err := os.WriteFile(path, s.PNG, 0o644); err != nil {
		return fmt.Errorf("failed to save screenshot: %w", err)
	}
	return nil
}
