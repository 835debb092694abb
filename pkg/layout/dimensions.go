package layout

import (
	"unicode/utf8"

	"github.com/OFFIS-RIT/orbit/pkg/common"
)

// Deterministic text metrics. A uniform per-rune width keeps the estimate
// reproducible across environments and strictly monotonic in label length,
// which the angular packing math relies on.
const (
	runeWidth    = 7.5
	labelPadding = 16
)

// EstimateDimensions computes the on-screen footprint of a node label.
// Width grows with the label's rune count plus fixed padding, floored at
// the configured minimum; height is fixed.
func EstimateDimensions(label string, cfg Config) common.Dimensions {
	width := float64(utf8.RuneCountInString(label))*runeWidth + 2*labelPadding
	if width < cfg.MinNodeWidth {
		width = cfg.MinNodeWidth
	}
	return common.Dimensions{
		Width:  width,
		Height: cfg.NodeHeight,
	}
}
