package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want hclog.Level
	}{
		{"", hclog.Info},
		{"debug", hclog.Debug},
		{"WARN", hclog.Warn},
		{"error", hclog.Error},
		{"nonsense", hclog.Info},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("atom", "info", &buf)

	log.Debug("hidden")
	log.Info("window resized", "width", 400, "height", 300)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "atom: window resized") || !strings.Contains(out, "width=400") {
		t.Errorf("unexpected output: %q", out)
	}
}
