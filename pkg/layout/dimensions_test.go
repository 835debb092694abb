package layout

import "testing"

func TestEstimateDimensions(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		label      string
		wantWidth  float64
		wantHeight float64
	}{
		{
			name:       "short label floored at minimum width",
			label:      "A",
			wantWidth:  cfg.MinNodeWidth,
			wantHeight: cfg.NodeHeight,
		},
		{
			name:       "empty label floored at minimum width",
			label:      "",
			wantWidth:  cfg.MinNodeWidth,
			wantHeight: cfg.NodeHeight,
		},
		{
			name:       "long label grows past the floor",
			label:      "Shigeru Miyamoto",
			wantWidth:  16*runeWidth + 2*labelPadding,
			wantHeight: cfg.NodeHeight,
		},
		{
			name:       "multibyte runes counted once",
			label:      "Überleben",
			wantWidth:  9*runeWidth + 2*labelPadding,
			wantHeight: cfg.NodeHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := EstimateDimensions(tt.label, cfg)
			if dims.Width != tt.wantWidth {
				t.Fatalf("EstimateDimensions(%q).Width = %v, want %v", tt.label, dims.Width, tt.wantWidth)
			}
			if dims.Height != tt.wantHeight {
				t.Fatalf("EstimateDimensions(%q).Height = %v, want %v", tt.label, dims.Height, tt.wantHeight)
			}
		})
	}
}

func TestEstimateDimensionsMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	labels := []string{"", "M", "Ma", "Mario", "Mario Bros", "Super Mario Brothers", "Super Mario Brothers: The Lost Levels"}
	previous := 0.0
	for _, label := range labels {
		width := EstimateDimensions(label, cfg).Width
		if width < previous {
			t.Fatalf("width shrank for longer label %q: %v < %v", label, width, previous)
		}
		previous = width
	}
}
