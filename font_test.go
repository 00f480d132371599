package icongen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFont(t *testing.T) {
	tmp := t.TempDir()
	notAFont := filepath.Join(tmp, "not-a-font.ttf")
	if err := os.WriteFile(notAFont, []byte("this is not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"no candidates", nil, true},
		{"missing file", []string{filepath.Join(tmp, "missing.ttf")}, true},
		{"unparsable file", []string{notAFont}, true},
		{"missing then unparsable", []string{filepath.Join(tmp, "missing.ttf"), notAFont}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := LoadFont(tt.paths, 24)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if face != nil {
					t.Error("expected nil face on error")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
