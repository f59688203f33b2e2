package ansihtml

import (
	"testing"
)

func TestIndexedColorNamed(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "#000000"},  // Black
		{1, "#cd3131"},  // Red
		{2, "#0dbc79"},  // Green
		{7, "#e5e5e5"},  // White
		{8, "#666666"},  // Bright Black
		{9, "#f14c4c"},  // Bright Red
		{15, "#ffffff"}, // Bright White
	}

	for _, tt := range tests {
		got := IndexedColor(tt.index).CSS()
		if got != tt.expected {
			t.Errorf("IndexedColor(%d).CSS() = %q, want %q", tt.index, got, tt.expected)
		}
	}
}

func TestIndexedColorCube(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{16, "#000000"},  // cube origin
		{17, "#00005f"},  // first blue step
		{196, "#ff0000"}, // pure red corner
		{46, "#00ff00"},  // pure green corner
		{21, "#0000ff"},  // pure blue corner
		{231, "#ffffff"}, // cube far corner
	}

	for _, tt := range tests {
		got := IndexedColor(tt.index).CSS()
		if got != tt.expected {
			t.Errorf("IndexedColor(%d).CSS() = %q, want %q", tt.index, got, tt.expected)
		}
	}
}

func TestIndexedColorGrayscale(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{232, "#080808"},
		{244, "#808080"},
		{255, "#eeeeee"},
	}

	for _, tt := range tests {
		got := IndexedColor(tt.index).CSS()
		if got != tt.expected {
			t.Errorf("IndexedColor(%d).CSS() = %q, want %q", tt.index, got, tt.expected)
		}
	}
}

func TestIndexedColorOutOfRange(t *testing.T) {
	if got := IndexedColor(-1).CSS(); got != "#ffffff" {
		t.Errorf("expected white fallback for -1, got %q", got)
	}
	if got := IndexedColor(256).CSS(); got != "#ffffff" {
		t.Errorf("expected white fallback for 256, got %q", got)
	}
}

func TestTrueColorCSS(t *testing.T) {
	if got := TrueColor(10, 20, 30).CSS(); got != "rgb(10,20,30)" {
		t.Errorf("expected rgb(10,20,30), got %q", got)
	}
	if got := TrueColor(0, 0, 0).CSS(); got != "rgb(0,0,0)" {
		t.Errorf("expected rgb(0,0,0), got %q", got)
	}
	if got := TrueColor(255, 255, 255).CSS(); got != "rgb(255,255,255)" {
		t.Errorf("expected rgb(255,255,255), got %q", got)
	}
}
