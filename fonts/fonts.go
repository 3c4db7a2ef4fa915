// Package fonts loads the typefaces used for on-screen text.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// dpi makes a face's point size equal to its pixel size.
const dpi = 72

// ScoreFace returns the Go Regular typeface at size pixels.
func ScoreFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse score font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// Measure returns the pixel width and line height of s drawn with face.
func Measure(face font.Face, s string) (w, h int) {
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// Ascent returns the distance in pixels from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
